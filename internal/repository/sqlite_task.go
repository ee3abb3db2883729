package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nuwanhe/smartsl/internal/db"
	"github.com/nuwanhe/smartsl/internal/domain"
)

// taskColumns is the canonical SELECT column list for study_tasks.
const taskColumns = `id, subject, time, completed`

// SQLiteTaskStore implements TaskStore using a SQLite database.
type SQLiteTaskStore struct {
	db  *sql.DB
	uow db.UnitOfWork
	log zerolog.Logger
}

// NewSQLiteTaskStore creates a new SQLiteTaskStore.
func NewSQLiteTaskStore(database *sql.DB, log zerolog.Logger) *SQLiteTaskStore {
	return &SQLiteTaskStore{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
		log: log,
	}
}

func (s *SQLiteTaskStore) Load(ctx context.Context) ([]domain.StudyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM study_tasks ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading study tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.StudyTask
	for rows.Next() {
		var t domain.StudyTask
		var completed int
		if err := rows.Scan(&t.ID, &t.Subject, &t.Time, &completed); err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable study task row")
			continue
		}
		t.Completed = completed != 0
		if err := t.Validate(); err != nil {
			s.log.Warn().Err(err).Str("id", t.ID).Msg("skipping malformed study task row")
			continue
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading study tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLiteTaskStore) Save(ctx context.Context, tasks []domain.StudyTask) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM study_tasks`); err != nil {
			return fmt.Errorf("clearing study tasks: %w", err)
		}
		insert := `INSERT INTO study_tasks (id, subject, time, completed, position)
			VALUES (?, ?, ?, ?, ?)`
		for i, t := range tasks {
			if _, err := tx.ExecContext(ctx, insert,
				t.ID, string(t.Subject), string(t.Time), boolToInt(t.Completed), i,
			); err != nil {
				return fmt.Errorf("inserting study task %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
