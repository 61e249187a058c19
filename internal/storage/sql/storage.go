package sqlstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/mkravets/eventcal/internal/storage"
	log "github.com/sirupsen/logrus"
)

var ErrConnectionFailed = errors.New("failed to connect")

const dbErrUniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	date TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
`

type Config struct {
	// Driver is "postgres" or "sqlite3".
	Driver   string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	// File is the database path for the sqlite3 driver.
	File string
}

type Storage struct {
	config Config
	db     *sqlx.DB
}

func New(config Config) *Storage {
	if config.Driver == "" {
		config.Driver = "postgres"
	}
	return &Storage{config: config}
}

func (s *Storage) Connect(ctx context.Context) error {
	var dsn string
	switch s.config.Driver {
	case "sqlite3":
		dsn = s.config.File
	default:
		dsn = fmt.Sprintf(
			"sslmode=disable host=%s port=%d dbname=%s user=%s password=%s",
			s.config.Host, s.config.Port, s.config.Database, s.config.Username, s.config.Password)
	}

	db, err := sqlx.ConnectContext(ctx, s.config.Driver, dsn)
	if err != nil {
		log.Errorf("failed to connect: %v", err)
		return ErrConnectionFailed
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

func (s *Storage) AddEvent(ctx context.Context, e *storage.Event) error {
	if err := storage.ValidateEvent(*e); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(
		ctx,
		s.db.Rebind("INSERT INTO events(id, title, date, start_time, end_time, description, location, color) "+
			"VALUES(?, ?, ?, ?, ?, ?, ?, ?)"),
		e.ID, e.Title, e.Date, e.StartTime, e.EndTime, e.Description, e.Location, e.Color)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == dbErrUniqueViolation {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	return err
}

func (s *Storage) UpdateEvent(ctx context.Context, id string, e storage.Event) error {
	if err := storage.ValidateEvent(e); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		s.db.Rebind("UPDATE events SET title=?, date=?, start_time=?, end_time=?, description=?, location=?, color=? "+
			"WHERE id=?"),
		e.Title, e.Date, e.StartTime, e.EndTime, e.Description, e.Location, e.Color, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("failed to update event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return nil
}

func (s *Storage) RemoveEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM events WHERE id=?"), id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("failed to remove event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (storage.Event, error) {
	var e storage.Event
	err := s.db.GetContext(ctx, &e, s.db.Rebind("SELECT * FROM events WHERE id=?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Event{}, fmt.Errorf("failed to get event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return e, err
}

func (s *Storage) GetEventsForDate(ctx context.Context, date string) ([]storage.Event, error) {
	var events []storage.Event
	err := s.db.SelectContext(
		ctx,
		&events,
		s.db.Rebind("SELECT * FROM events WHERE date=? ORDER BY start_time, id"),
		date)
	return events, err
}

// Select in range [startDate:endDate], both inclusive.
func (s *Storage) GetEventsRange(ctx context.Context, startDate, endDate string) ([]storage.Event, error) {
	var events []storage.Event
	err := s.db.SelectContext(
		ctx,
		&events,
		s.db.Rebind("SELECT * FROM events WHERE date BETWEEN ? AND ? ORDER BY date, start_time, id"),
		startDate, endDate)
	return events, err
}

func (s *Storage) RemoveOlderThan(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM events WHERE date < ?"), date)
	return err
}
