package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider implements domain.CurrentTimeProvider with the wall clock, in UTC.
type CurrentTimeProvider struct{}

// Now returns the current UTC time truncated to microseconds, the precision Postgres keeps.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// InitCurrentTimeProvider registers the CurrentTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
