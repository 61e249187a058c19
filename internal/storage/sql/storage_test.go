//go:build sql

package sqlstorage_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mkravets/eventcal/internal/storage"
	sqlstorage "github.com/mkravets/eventcal/internal/storage/sql"
	"github.com/stretchr/testify/require"
)

// Runs against sqlite by default; set TEST_DB_DRIVER=postgres plus the
// TEST_POSTGRES_* variables to exercise the postgres driver.
func createStorage(t *testing.T) *sqlstorage.Storage {
	t.Helper()

	config := sqlstorage.Config{
		Driver: "sqlite3",
		File:   filepath.Join(t.TempDir(), "calendar.db"),
	}
	if os.Getenv("TEST_DB_DRIVER") == "postgres" {
		port, _ := strconv.Atoi(os.Getenv("TEST_POSTGRES_PORT"))
		config = sqlstorage.Config{
			Driver:   "postgres",
			Host:     os.Getenv("TEST_POSTGRES_HOST"),
			Port:     port,
			Database: os.Getenv("TEST_POSTGRES_DB"),
			Username: os.Getenv("TEST_POSTGRES_USER"),
			Password: os.Getenv("TEST_POSTGRES_PASSWORD"),
		}
	}

	s := sqlstorage.New(config)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() {
		s.RemoveOlderThan(ctx, "9999-12-31")
		s.Close(ctx)
	})
	return s
}

func newEvent(title, date, start, end string) storage.Event {
	return storage.Event{
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Color:     "#1a73e8",
	}
}

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("test", "2024-03-05", "09:00", "10:00")

		require.NoError(t, s.AddEvent(ctx, &e))
		require.NotEmpty(t, e.ID)

		got, err := s.GetEvent(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, e, got)
	})

	t.Run("update", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("test", "2024-03-05", "09:00", "10:00")
		require.NoError(t, s.AddEvent(ctx, &e))

		updated := newEvent("renamed", "2024-03-06", "11:00", "12:30")
		require.NoError(t, s.UpdateEvent(ctx, e.ID, updated))

		got, err := s.GetEvent(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, "renamed", got.Title)
		require.Equal(t, "2024-03-06", got.Date)
	})

	t.Run("remove", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("test", "2024-03-05", "09:00", "10:00")
		require.NoError(t, s.AddEvent(ctx, &e))

		require.NoError(t, s.RemoveEvent(ctx, e.ID))
		_, err := s.GetEvent(ctx, e.ID)
		require.ErrorIs(t, err, storage.ErrNotFoundEvent)
	})

	t.Run("range and date queries", func(t *testing.T) {
		s := createStorage(t)
		for _, e := range []storage.Event{
			newEvent("late", "2024-03-10", "08:00", "09:00"),
			newEvent("second", "2024-03-01", "10:00", "11:00"),
			newEvent("first", "2024-03-01", "09:00", "09:30"),
			newEvent("next month", "2024-04-01", "09:00", "09:30"),
		} {
			e := e
			require.NoError(t, s.AddEvent(ctx, &e))
		}

		events, err := s.GetEventsRange(ctx, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		require.Len(t, events, 3)
		require.Equal(t, "first", events[0].Title)
		require.Equal(t, "second", events[1].Title)
		require.Equal(t, "late", events[2].Title)

		events, err = s.GetEventsForDate(ctx, "2024-03-01")
		require.NoError(t, err)
		require.Len(t, events, 2)
	})
}

func TestStorageNegativeCases(t *testing.T) {
	ctx := context.Background()

	t.Run("update not existing event", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("test", "2024-03-05", "09:00", "10:00")
		require.ErrorIs(t, s.UpdateEvent(ctx, "___not_exists___", e), storage.ErrNotFoundEvent)
	})

	t.Run("remove not existing event", func(t *testing.T) {
		s := createStorage(t)
		require.ErrorIs(t, s.RemoveEvent(ctx, "___not_exists___"), storage.ErrNotFoundEvent)
	})

	t.Run("invalid event time", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("test", "2024-03-05", "10:00", "09:00")
		require.ErrorIs(t, s.AddEvent(ctx, &e), storage.ErrIncorrectEventTime)
	})
}
