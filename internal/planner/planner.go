// Package planner owns the ordered collection of planned study sessions.
// The engine is the sole writer of the task store: every mutation re-sorts
// the collection and persists it whole before returning.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/repository"
)

// Engine manages the study schedule. It is not safe for concurrent use;
// there is exactly one logical writer (the UI loop or a CLI invocation).
type Engine struct {
	store repository.TaskStore
	log   zerolog.Logger
	tasks []domain.StudyTask
}

// NewEngine creates an Engine rehydrated from the store. A store that
// cannot be read is treated as empty, never as a startup failure.
func NewEngine(ctx context.Context, store repository.TaskStore, log zerolog.Logger) *Engine {
	tasks, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved schedule, starting empty")
		tasks = nil
	}
	domain.SortTasks(tasks)
	return &Engine{store: store, log: log, tasks: tasks}
}

// AddTask creates a new task for subject at the given time, inserts it into
// the schedule, and persists the re-sorted collection. Tasks sharing a time
// keep their insertion order.
func (e *Engine) AddTask(ctx context.Context, subject domain.Subject, at domain.TimeOfDay) (domain.StudyTask, error) {
	task := domain.StudyTask{
		ID:      uuid.New().String(),
		Subject: subject,
		Time:    at,
	}
	if err := task.Validate(); err != nil {
		return domain.StudyTask{}, err
	}

	prev := e.tasks
	e.tasks = append(append([]domain.StudyTask(nil), prev...), task)
	domain.SortTasks(e.tasks)

	// A failed save rolls the collection back so memory and store agree.
	if err := e.save(ctx); err != nil {
		e.tasks = prev
		return domain.StudyTask{}, err
	}
	return task, nil
}

// ToggleComplete flips the completed flag on the task with the given id.
// An unknown id is a no-op, not an error.
func (e *Engine) ToggleComplete(ctx context.Context, id string) error {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			e.tasks[i].Completed = !e.tasks[i].Completed
			if err := e.save(ctx); err != nil {
				e.tasks[i].Completed = !e.tasks[i].Completed
				return err
			}
			return nil
		}
	}
	return nil
}

// RemoveTask deletes the task with the given id. An unknown id is a no-op.
func (e *Engine) RemoveTask(ctx context.Context, id string) error {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			prev := e.tasks
			e.tasks = append(append([]domain.StudyTask(nil), prev[:i]...), prev[i+1:]...)
			if err := e.save(ctx); err != nil {
				e.tasks = prev
				return err
			}
			return nil
		}
	}
	return nil
}

// ListTasks returns a copy of the schedule in its maintained sort order.
func (e *Engine) ListTasks() []domain.StudyTask {
	out := make([]domain.StudyTask, len(e.tasks))
	copy(out, e.tasks)
	return out
}

func (e *Engine) save(ctx context.Context) error {
	if err := e.store.Save(ctx, e.tasks); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}
