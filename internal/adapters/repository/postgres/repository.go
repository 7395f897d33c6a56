// Package postgres implements the lifecycle repository on PostgreSQL via
// pgx. The aggregate's collections (tasks, checklist, documents, timeline,
// payroll breakdown) are stored as jsonb; scalar columns carry the fields the
// listing and stats surfaces filter on. Saves are guarded by a version column
// checked in the UPDATE predicate.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	pgdb "github.com/peopleops/lifecycle-service/internal/platform/db/postgres"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

const uniqueViolationCode = "23505"

// Compile-time check that Repository implements ports.LifecycleRepository.
var _ ports.LifecycleRepository = (*Repository)(nil)

// Repository is the PostgreSQL lifecycle store.
type Repository struct {
	db pgdb.Queryer
}

// New creates a Repository over the given query executor.
func New(db pgdb.Queryer) *Repository {
	return &Repository{db: db}
}

const lifecycleColumns = `id, employee_id, employee_name, employee_email, type, status,
       start_date, target_completion_date, actual_completion_date,
       initiated_by, assigned_hr, department, role_id,
       tasks, checklist, documents, timeline, final_payroll,
       version, created_at, updated_at`

// Create inserts a new lifecycle. The partial unique index on active
// (employee_id, type) pairs turns creation races into domain.ErrConflict.
func (r *Repository) Create(ctx context.Context, l *lifecycle.Lifecycle) error {
	docs, err := marshalCollections(l)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO lifecycles (`+lifecycleColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		l.ID, l.EmployeeID, l.EmployeeName, l.EmployeeEmail, string(l.Type), string(l.Status),
		l.StartDate, l.TargetCompletionDate, l.ActualCompletionDate,
		l.InitiatedBy, l.AssignedHR, l.Department, l.RoleID,
		docs.tasks, docs.checklist, docs.documents, docs.timeline, nullableJSON(l.FinalPayroll),
		l.Version, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}

// Get loads a lifecycle by ID.
func (r *Repository) Get(ctx context.Context, id string) (*lifecycle.Lifecycle, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+lifecycleColumns+`
          FROM lifecycles
         WHERE id = $1`, id)

	l, err := scanLifecycle(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return l, nil
}

// Update saves a mutated lifecycle under the optimistic version guard. The
// row must still carry the version the caller loaded; a zero-row update means
// a concurrent writer won and is reported as domain.ErrConflict. Rows are
// never deleted, so a vanished row cannot be the cause.
func (r *Repository) Update(ctx context.Context, l *lifecycle.Lifecycle) error {
	docs, err := marshalCollections(l)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
        UPDATE lifecycles
           SET employee_name = $1,
               employee_email = $2,
               status = $3,
               actual_completion_date = $4,
               tasks = $5,
               checklist = $6,
               documents = $7,
               timeline = $8,
               final_payroll = $9,
               updated_at = $10,
               version = version + 1
         WHERE id = $11
           AND version = $12`,
		l.EmployeeName, l.EmployeeEmail, string(l.Status), l.ActualCompletionDate,
		docs.tasks, docs.checklist, docs.documents, docs.timeline, nullableJSON(l.FinalPayroll),
		l.UpdatedAt, l.ID, l.Version,
	)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lifecycle %s version %d is stale: %w", l.ID, l.Version, domain.ErrConflict)
	}

	l.Version++
	return nil
}

// FindActive returns the active lifecycle for the (employee, type) pair.
func (r *Repository) FindActive(ctx context.Context, employeeID string, t lifecycle.Type) (*lifecycle.Lifecycle, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+lifecycleColumns+`
          FROM lifecycles
         WHERE employee_id = $1
           AND type = $2
           AND status IN ('initiated', 'in_progress')`, employeeID, string(t))

	l, err := scanLifecycle(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return l, nil
}

// List returns one page of lifecycles matching the filter plus the total
// match count before pagination.
func (r *Repository) List(ctx context.Context, filter lifecycle.Filter, page lifecycle.Page) ([]lifecycle.Lifecycle, int, error) {
	where, args := buildWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM lifecycles`+where, args...).Scan(&total); err != nil {
		return nil, 0, translatePgError(err)
	}

	query := `
        SELECT ` + lifecycleColumns + `
          FROM lifecycles` + where + `
         ORDER BY ` + orderClause(page) + `
         LIMIT ` + fmt.Sprintf("$%d", len(args)+1) + ` OFFSET ` + fmt.Sprintf("$%d", len(args)+2)
	args = append(args, page.Limit, page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translatePgError(err)
	}
	defer rows.Close()

	items, err := scanLifecycles(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActive returns all lifecycles in an active status.
func (r *Repository) ListActive(ctx context.Context) ([]lifecycle.Lifecycle, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+lifecycleColumns+`
          FROM lifecycles
         WHERE status IN ('initiated', 'in_progress')`)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	return scanLifecycles(rows)
}

// Stats aggregates counts over lifecycles matching the filter.
func (r *Repository) Stats(ctx context.Context, filter lifecycle.Filter, now time.Time) (lifecycle.Stats, error) {
	where, args := buildWhere(filter)
	args = append(args, now)
	nowArg := fmt.Sprintf("$%d", len(args))

	row := r.db.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE status IN ('initiated', 'in_progress')),
               count(*) FILTER (WHERE status = 'completed'),
               count(*) FILTER (WHERE status IN ('initiated', 'in_progress') AND target_completion_date < `+nowArg+`),
               count(*) FILTER (WHERE type = 'onboarding'),
               count(*) FILTER (WHERE type = 'offboarding')
          FROM lifecycles`+where, args...)

	var stats lifecycle.Stats
	if err := row.Scan(&stats.Total, &stats.Active, &stats.Completed,
		&stats.Overdue, &stats.Onboarding, &stats.Offboarding); err != nil {
		return lifecycle.Stats{}, translatePgError(err)
	}
	return stats, nil
}

// buildWhere renders the filter as a WHERE clause with positional args.
// OverdueOnly is evaluated against the database clock; the stats surface,
// which needs a caller-supplied instant, does its own overdue predicate.
func buildWhere(filter lifecycle.Filter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.Type != "" {
		add("type = $%d", string(filter.Type))
	}
	if filter.Department != "" {
		add("department = $%d", filter.Department)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		conds = append(conds,
			fmt.Sprintf("(employee_name ILIKE %s OR employee_email ILIKE %s OR employee_id ILIKE %s)", p, p, p))
	}
	if filter.OverdueOnly {
		conds = append(conds, "status IN ('initiated', 'in_progress') AND target_completion_date < now()")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps the normalized page sort onto a column. Page.Normalize
// restricts SortBy to a fixed set, so the clause is never attacker-supplied.
func orderClause(page lifecycle.Page) string {
	column := map[string]string{
		lifecycle.SortByStartDate:  "start_date",
		lifecycle.SortByTargetDate: "target_completion_date",
		lifecycle.SortByCreatedAt:  "created_at",
		lifecycle.SortByStatus:     "status",
	}[page.SortBy]
	if column == "" {
		column = "created_at"
	}

	direction := "DESC"
	if page.SortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

type jsonCollections struct {
	tasks     []byte
	checklist []byte
	documents []byte
	timeline  []byte
}

func marshalCollections(l *lifecycle.Lifecycle) (jsonCollections, error) {
	var out jsonCollections
	var err error

	if out.tasks, err = json.Marshal(l.Tasks); err != nil {
		return out, fmt.Errorf("marshalling tasks: %w", err)
	}
	if out.checklist, err = json.Marshal(l.Checklist); err != nil {
		return out, fmt.Errorf("marshalling checklist: %w", err)
	}
	if out.documents, err = json.Marshal(l.Documents); err != nil {
		return out, fmt.Errorf("marshalling documents: %w", err)
	}
	if out.timeline, err = json.Marshal(l.Timeline); err != nil {
		return out, fmt.Errorf("marshalling timeline: %w", err)
	}
	return out, nil
}

// nullableJSON maps an absent payroll breakdown to SQL NULL.
func nullableJSON(data json.RawMessage) any {
	if len(data) == 0 {
		return nil
	}
	return []byte(data)
}

func scanLifecycle(row pgx.Row) (*lifecycle.Lifecycle, error) {
	var l lifecycle.Lifecycle
	var typ, status string
	var tasks, checklist, documents, timeline, finalPayroll []byte

	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.EmployeeEmail, &typ, &status,
		&l.StartDate, &l.TargetCompletionDate, &l.ActualCompletionDate,
		&l.InitiatedBy, &l.AssignedHR, &l.Department, &l.RoleID,
		&tasks, &checklist, &documents, &timeline, &finalPayroll,
		&l.Version, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Type = lifecycle.Type(typ)
	l.Status = lifecycle.Status(status)

	if err := json.Unmarshal(tasks, &l.Tasks); err != nil {
		return nil, fmt.Errorf("unmarshalling tasks: %w", err)
	}
	if err := json.Unmarshal(checklist, &l.Checklist); err != nil {
		return nil, fmt.Errorf("unmarshalling checklist: %w", err)
	}
	if err := json.Unmarshal(documents, &l.Documents); err != nil {
		return nil, fmt.Errorf("unmarshalling documents: %w", err)
	}
	if err := json.Unmarshal(timeline, &l.Timeline); err != nil {
		return nil, fmt.Errorf("unmarshalling timeline: %w", err)
	}
	if len(finalPayroll) > 0 {
		l.FinalPayroll = json.RawMessage(finalPayroll)
	}

	return &l, nil
}

func scanLifecycles(rows pgx.Rows) ([]lifecycle.Lifecycle, error) {
	items := make([]lifecycle.Lifecycle, 0)
	for rows.Next() {
		l, err := scanLifecycle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}
	return items, nil
}

// translatePgError maps driver errors onto the domain error taxonomy.
func translatePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
