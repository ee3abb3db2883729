package repository

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/testutil"
)

func newTestStore(t *testing.T) *SQLiteTaskStore {
	t.Helper()
	return NewSQLiteTaskStore(testutil.NewTestDB(t), zerolog.Nop())
}

func TestSQLiteTaskStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tasks := []domain.StudyTask{
		testutil.NewTestTask(testutil.WithSubject("Science"), testutil.WithTime("09:00")),
		testutil.NewTestTask(testutil.WithSubject("Mathematics"), testutil.WithTime("14:00"), testutil.Completed()),
	}
	require.NoError(t, store.Save(ctx, tasks))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestSQLiteTaskStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSQLiteTaskStore_SaveReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []domain.StudyTask{
		testutil.NewTestTask(testutil.WithSubject("Science")),
		testutil.NewTestTask(testutil.WithSubject("History")),
	}
	require.NoError(t, store.Save(ctx, first))

	second := []domain.StudyTask{
		testutil.NewTestTask(testutil.WithSubject("Geography")),
	}
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, domain.Subject("Geography"), loaded[0].Subject)
}

func TestSQLiteTaskStore_SaveEmptyClears(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.StudyTask{testutil.NewTestTask()}))
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSQLiteTaskStore_LoadPreservesPositionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Two tasks at the same time: position, not id, decides order.
	a := testutil.NewTestTask(testutil.WithSubject("Science"), testutil.WithTime("10:00"))
	b := testutil.NewTestTask(testutil.WithSubject("History"), testutil.WithTime("10:00"))
	require.NoError(t, store.Save(ctx, []domain.StudyTask{a, b}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, a.ID, loaded[0].ID)
	assert.Equal(t, b.ID, loaded[1].ID)
}

func TestSQLiteTaskStore_LoadSkipsMalformedRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteTaskStore(database, zerolog.Nop())
	ctx := context.Background()

	good := testutil.NewTestTask(testutil.WithSubject("Science"), testutil.WithTime("09:00"))
	require.NoError(t, store.Save(ctx, []domain.StudyTask{good}))

	// Simulate corruption written by another process.
	_, err := database.ExecContext(ctx,
		`INSERT INTO study_tasks (id, subject, time, completed, position) VALUES (?, ?, ?, ?, ?)`,
		"corrupt", "Alchemy", "99:99", 0, 1)
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, good.ID, loaded[0].ID)
}
