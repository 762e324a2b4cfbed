package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	todoFields = []string{
		"id",
		"title",
		"description",
		"urgency",
		"owner_id",
		"created_at",
		"updated_at",
	}

	embeddedTodoFields = []string{
		"id",
		"title",
		"description",
		"urgency",
		"owner_id",
		"created_at",
		"updated_at",
		// text keeps the scan independent of the binary vector codec.
		"embedding::text",
	}
)

// TodoRepository implements the domain.TodoRepository interface using PostgreSQL as the storage backend.
type TodoRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTodoRepository creates a new instance of TodoRepository.
func NewTodoRepository(br squirrel.BaseRunner) TodoRepository {
	return TodoRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTodos lists todos newest first, with the total number of todos matching the filters.
func (tr TodoRepository) ListTodos(ctx context.Context, page int, pageSize int, opts ...domain.ListTodoOption) ([]domain.Todo, int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("pageSize", pageSize),
	))
	defer span.End()

	if pageSize <= 0 {
		err := domain.NewValidationErr("page_size must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, 0, err
	}
	if page <= 0 {
		err := domain.NewValidationErr("page must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, 0, err
	}

	params := &domain.ListTodosParams{}
	for _, opt := range opts {
		opt(params)
	}

	countQry := tr.sb.Select("COUNT(*)").From("todos")
	qry := tr.sb.
		Select(
			todoFields...,
		).From("todos").
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	if params.OwnerID != nil {
		countQry = countQry.Where(squirrel.Eq{"owner_id": *params.OwnerID})
		qry = qry.Where(squirrel.Eq{"owner_id": *params.OwnerID})
	}

	var total int
	err := countQry.QueryRowContext(spanCtx).Scan(&total)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, 0, err
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	todos := []domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows, false)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, 0, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, 0, err
	}

	return todos, total, nil
}

// ListEmbeddedTodos returns every todo of ownerID that has an embedding, embedding included.
func (tr TodoRepository) ListEmbeddedTodos(ctx context.Context, ownerID uuid.UUID) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := tr.sb.
		Select(
			embeddedTodoFields...,
		).
		From("todos").
		Where(squirrel.Expr("embedding IS NOT NULL")).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	todos := []domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows, true)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("candidates", len(todos)))
	return todos, nil
}

// CreateTodo creates a new todo.
func (tr TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Insert("todos").
		Columns(
			"id",
			"title",
			"description",
			"urgency",
			"owner_id",
			"embedding",
			"created_at",
			"updated_at",
		).
		Values(
			todo.ID,
			todo.Title,
			nullableString(todo.Description),
			todo.Urgency,
			todo.OwnerID,
			embeddingValue(todo.Embedding),
			todo.CreatedAt,
			todo.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// UpdateTodo updates an existing todo, embedding included.
func (tr TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Update("todos").
		Set("title", todo.Title).
		Set("description", nullableString(todo.Description)).
		Set("urgency", todo.Urgency).
		Set("embedding", embeddingValue(todo.Embedding)).
		Set("updated_at", todo.UpdatedAt).
		Where(squirrel.Eq{"id": todo.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteTodo deletes a todo by its ID.
func (tr TodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Delete("todos").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetTodo retrieves a todo by its ID, embedding included.
func (tr TodoRepository) GetTodo(ctx context.Context, id uuid.UUID) (domain.Todo, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	todo, err := scanTodo(
		tr.sb.
			Select(
				embeddedTodoFields...,
			).
			From("todos").
			Where(squirrel.Eq{"id": id}).
			QueryRowContext(spanCtx),
		true,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, false, err
	}

	return todo, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo reads a row selected with todoFields, or embeddedTodoFields when withEmbedding is set.
func scanTodo(row rowScanner, withEmbedding bool) (domain.Todo, error) {
	var (
		todo        domain.Todo
		description sql.NullString
		embedding   *pgvector.Vector
	)
	dest := []any{
		&todo.ID,
		&todo.Title,
		&description,
		&todo.Urgency,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	}
	if withEmbedding {
		dest = append(dest, &embedding)
	}

	if err := row.Scan(dest...); err != nil {
		return domain.Todo{}, err
	}

	todo.Description = description.String
	if embedding != nil {
		todo.Embedding = toFloat64(embedding.Slice())
	}
	return todo, nil
}

// InitTodoRepository is a Symbiont initializer for TodoRepository.
type InitTodoRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TodoRepository in the dependency container.
func (tr InitTodoRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TodoRepository](NewTodoRepository(tr.DB))
	return ctx, nil
}

// embeddingValue maps a missing embedding to NULL.
func embeddingValue(input []float64) any {
	if len(input) == 0 {
		return nil
	}
	return pgvector.NewVector(toFloat32(input))
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

func toFloat64(input []float32) []float64 {
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}
