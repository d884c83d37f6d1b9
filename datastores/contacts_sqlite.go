package datastores

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// ContactsSQLite implements [ContactsStore] on top of a SQLite database.
type ContactsSQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ ContactsStore = (*ContactsSQLite)(nil)

// OpenContactsSQLite opens the database at path and applies pending migrations.
func OpenContactsSQLite(ctx context.Context, path string) (*ContactsSQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err = migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &ContactsSQLite{db: db, now: time.Now}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}
	// m.Close would also close db.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func (s *ContactsSQLite) Close() error { return s.db.Close() }

// Ping is used as the readiness probe.
func (s *ContactsSQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

const insertContact = `INSERT INTO contacts (id, first, last, avatar, twitter, notes, favorite, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (s *ContactsSQLite) Create(ctx context.Context, c *Contact) (ContactID, error) {
	generate := c.ID == ""
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	for {
		id := c.ID
		if generate {
			id = newContactID()
		}
		res, err := s.db.ExecContext(ctx, insertContact+` ON CONFLICT(id) DO NOTHING`,
			id, c.First, c.Last, c.Avatar, c.Twitter, c.Notes, c.Favorite, formatTime(createdAt))
		if err != nil {
			return "", fmt.Errorf("insert contact: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("insert contact: %w", err)
		}
		switch {
		case n == 1:
			return id, nil
		case !generate:
			return "", ErrObjectExists
		}
	}
}

const selectContacts = `SELECT id, first, last, avatar, twitter, notes, favorite, created_at FROM contacts`

func (s *ContactsSQLite) List(ctx context.Context, query string) ([]*Contact, error) {
	rows, err := s.db.QueryContext(ctx, selectContacts+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		if Matches(c, query) {
			contacts = append(contacts, c)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactsSQLite) Get(ctx context.Context, id ContactID) (*Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, selectContacts+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrObjectNotFound
	}
	return c, err
}

func (s *ContactsSQLite) Put(ctx context.Context, c *Contact) error {
	if c.ID == "" {
		_, err := s.Create(ctx, c)
		return err
	}
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, insertContact+` ON CONFLICT(id) DO UPDATE SET
	first = excluded.first, last = excluded.last, avatar = excluded.avatar,
	twitter = excluded.twitter, notes = excluded.notes, favorite = excluded.favorite`,
		c.ID, c.First, c.Last, c.Avatar, c.Twitter, c.Notes, c.Favorite, formatTime(createdAt))
	if err != nil {
		return fmt.Errorf("put contact: %w", err)
	}
	return nil
}

func (s *ContactsSQLite) Delete(ctx context.Context, id ContactID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func scanContact(row interface{ Scan(...any) error }) (*Contact, error) {
	var (
		c         Contact
		createdAt string
	)
	err := row.Scan(&c.ID, &c.First, &c.Last, &c.Avatar, &c.Twitter, &c.Notes, &c.Favorite, &createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", c.ID, err)
	}
	return &c, nil
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }
