package log

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_Initialize(t *testing.T) {
	tests := map[string]struct {
		level     string
		expectErr bool
	}{
		"info":          {level: "info"},
		"debug":         {level: "debug"},
		"invalid-level": {level: "verbose", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			init := &InitLogger{Level: tt.level}

			_, err := init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			defer init.Close()

			logger, err := depend.Resolve[*zap.Logger]()
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	logger := NewLogger(zapcore.WarnLevel, false)

	assert.Nil(t, logger.Check(zapcore.InfoLevel, "dropped"))
	assert.NotNil(t, logger.Check(zapcore.WarnLevel, "kept"))
	assert.NotNil(t, logger.Check(zapcore.ErrorLevel, "kept"))
}
