package repository

import (
	"context"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// TaskStore persists the user's study schedule as a whole collection.
// Persistence is replace-on-write: Save overwrites everything the store
// holds, and Load rehydrates it in the order it was saved. There is no
// incremental diffing and no cross-device sync.
type TaskStore interface {
	// Load returns the previously saved schedule. Corrupted or unparseable
	// rows are skipped, never propagated: a store that cannot produce a
	// valid task yields an empty collection.
	Load(ctx context.Context) ([]domain.StudyTask, error)

	// Save durably replaces the entire persisted collection with tasks,
	// preserving their order.
	Save(ctx context.Context, tasks []domain.StudyTask) error
}
