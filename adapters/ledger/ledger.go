package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"bross/domain/core"
	"bross/domain/run"
	"bross/domain/verdict"
	"bross/internal/errors"
)

// Ledger persists evaluation runs in SQL. Driver may be "sqlite3" (the local
// default) or "postgres". Implements ports.RunLedger.
type Ledger struct {
	db *sqlx.DB
}

// Open connects to the database and prepares the schema
func Open(driver, dsn string) (*Ledger, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s ledger", driver)
	}
	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// NewLedger wraps an existing connection (tests)
func NewLedger(db *sqlx.DB) *Ledger {
	return &Ledger{db: db}
}

// Close releases the underlying connection pool
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS evaluation_runs (
		id                TEXT PRIMARY KEY,
		created_at        TIMESTAMP NOT NULL,
		seed              BIGINT NOT NULL,
		iterations        INTEGER NOT NULL,
		alpha             DOUBLE PRECISION NOT NULL,
		total_pairs       INTEGER NOT NULL,
		informative_pairs INTEGER NOT NULL,
		steps_mean        DOUBLE PRECISION NOT NULL,
		steps_median      DOUBLE PRECISION NOT NULL,
		steps_p90         DOUBLE PRECISION NOT NULL,
		steps_min         DOUBLE PRECISION NOT NULL,
		steps_max         DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_categories (
		run_id     TEXT NOT NULL REFERENCES evaluation_runs(id),
		category   TEXT NOT NULL,
		count      INTEGER NOT NULL,
		proportion DOUBLE PRECISION NOT NULL,
		ci_lower   DOUBLE PRECISION NOT NULL,
		ci_upper   DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, category)
	);`
	if _, err := l.db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to migrate ledger schema")
	}
	return nil
}

// SaveRun stores a run and its five category rows in one transaction
func (l *Ledger) SaveRun(ctx context.Context, r *run.EvaluationRun) error {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	insertRun := l.db.Rebind(`INSERT INTO evaluation_runs (
		id, created_at, seed, iterations, alpha, total_pairs, informative_pairs,
		steps_mean, steps_median, steps_p90, steps_min, steps_max
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = tx.ExecContext(ctx, insertRun,
		r.ID, r.CreatedAt.Time(), r.Seed, r.Iterations, r.Alpha,
		r.TotalPairs, r.InformativePairs,
		r.Steps.Mean, r.Steps.Median, r.Steps.P90, r.Steps.Min, r.Steps.Max,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert evaluation run")
	}

	insertRow := l.db.Rebind(`INSERT INTO run_categories (
		run_id, category, count, proportion, ci_lower, ci_upper
	) VALUES (?, ?, ?, ?, ?, ?)`)
	for _, row := range r.Table.Rows {
		_, err = tx.ExecContext(ctx, insertRow,
			r.ID, row.Category, row.Count, row.Proportion, row.Lower, row.Upper)
		if err != nil {
			return errors.Wrapf(err, "failed to insert category row %s", row.Category)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit evaluation run")
	}
	return nil
}

// GetRun loads a run with its category rows
func (l *Ledger) GetRun(ctx context.Context, id core.RunID) (*run.EvaluationRun, error) {
	query := l.db.Rebind(`SELECT
		id, created_at, seed, iterations, alpha, total_pairs, informative_pairs,
		steps_mean, steps_median, steps_p90, steps_min, steps_max
	FROM evaluation_runs WHERE id = ?`)

	var rec runRecord
	if err := l.db.GetContext(ctx, &rec, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", core.ErrRunNotFound, id)
		}
		return nil, errors.Wrap(err, "failed to load evaluation run")
	}

	r := rec.toDomain()
	if err := l.loadCategories(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns returns the most recent runs, newest first
func (l *Ledger) ListRuns(ctx context.Context, limit int) ([]*run.EvaluationRun, error) {
	if limit < 1 {
		limit = 20
	}
	query := l.db.Rebind(`SELECT
		id, created_at, seed, iterations, alpha, total_pairs, informative_pairs,
		steps_mean, steps_median, steps_p90, steps_min, steps_max
	FROM evaluation_runs ORDER BY created_at DESC LIMIT ?`)

	var recs []runRecord
	if err := l.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, errors.Wrap(err, "failed to list evaluation runs")
	}

	out := make([]*run.EvaluationRun, 0, len(recs))
	for _, rec := range recs {
		r := rec.toDomain()
		if err := l.loadCategories(ctx, r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (l *Ledger) loadCategories(ctx context.Context, r *run.EvaluationRun) error {
	query := l.db.Rebind(`SELECT category, count, proportion, ci_lower, ci_upper
	FROM run_categories WHERE run_id = ?`)

	var rows []verdict.CategoryRow
	if err := l.db.SelectContext(ctx, &rows, query, r.ID); err != nil {
		return errors.Wrap(err, "failed to load category rows")
	}

	// restore the fixed reporting order
	byCategory := make(map[verdict.Category]verdict.CategoryRow, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row
	}
	ordered := make([]verdict.CategoryRow, 0, len(rows))
	for _, cat := range verdict.Categories() {
		if row, ok := byCategory[cat]; ok {
			ordered = append(ordered, row)
		}
	}

	r.Table = verdict.FrequencyTable{
		Total: r.Iterations,
		Alpha: r.Alpha,
		Rows:  ordered,
	}
	return nil
}

// runRecord is the flat database shape of an evaluation run
type runRecord struct {
	ID               string    `db:"id"`
	CreatedAt        time.Time `db:"created_at"`
	Seed             int64     `db:"seed"`
	Iterations       int       `db:"iterations"`
	Alpha            float64   `db:"alpha"`
	TotalPairs       int       `db:"total_pairs"`
	InformativePairs int       `db:"informative_pairs"`
	StepsMean        float64   `db:"steps_mean"`
	StepsMedian      float64   `db:"steps_median"`
	StepsP90         float64   `db:"steps_p90"`
	StepsMin         float64   `db:"steps_min"`
	StepsMax         float64   `db:"steps_max"`
}

func (rec runRecord) toDomain() *run.EvaluationRun {
	return &run.EvaluationRun{
		ID:               core.RunID(rec.ID),
		CreatedAt:        core.NewTimestamp(rec.CreatedAt),
		Seed:             rec.Seed,
		Iterations:       rec.Iterations,
		Alpha:            rec.Alpha,
		TotalPairs:       rec.TotalPairs,
		InformativePairs: rec.InformativePairs,
		Steps: run.StepsSummary{
			Mean:   rec.StepsMean,
			Median: rec.StepsMedian,
			P90:    rec.StepsP90,
			Min:    rec.StepsMin,
			Max:    rec.StepsMax,
		},
	}
}
