package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const createSessionsTable = `CREATE TABLE IF NOT EXISTS console_sessions (
	id CHAR(36) NOT NULL PRIMARY KEY,
	access_token TEXT NOT NULL,
	full_name VARCHAR(255) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT '',
	expires_at DATETIME NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_console_sessions_expires (expires_at)
)`

// MySQLStore keeps sessions server side. The cookie only carries the row id.
type MySQLStore struct {
	DB   *sql.DB
	opts Options
	now  func() time.Time
}

func NewMySQLStore(db *sql.DB, opts Options) *MySQLStore {
	return &MySQLStore{DB: db, opts: opts, now: time.Now}
}

// EnsureSchema creates the sessions table when it does not exist yet.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("session: create table: %w", err)
	}
	return nil
}

func (s *MySQLStore) sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.opts.CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (s *MySQLStore) Load(r *http.Request) (*Session, error) {
	id, ok := s.sessionID(r)
	if !ok {
		return nil, nil
	}

	ctx := r.Context()
	var (
		sess      Session
		expiresAt time.Time
	)
	err := s.DB.QueryRowContext(ctx,
		`SELECT access_token, full_name, email, expires_at FROM console_sessions WHERE id = ?`, id,
	).Scan(&sess.AccessToken, &sess.FullName, &sess.Email, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}

	if !expiresAt.After(s.now()) {
		if _, err := s.DB.ExecContext(ctx, `DELETE FROM console_sessions WHERE id = ?`, id); err != nil {
			return nil, fmt.Errorf("session: delete expired: %w", err)
		}
		return nil, nil
	}
	return &sess, nil
}

// Save always issues a fresh id and drops the previous row.
func (s *MySQLStore) Save(w http.ResponseWriter, r *http.Request, sess Session) error {
	ctx := r.Context()
	if old, ok := s.sessionID(r); ok {
		if _, err := s.DB.ExecContext(ctx, `DELETE FROM console_sessions WHERE id = ?`, old); err != nil {
			return fmt.Errorf("session: rotate: %w", err)
		}
	}

	id := uuid.NewString()
	expiresAt := s.now().Add(s.opts.TTL).UTC()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO console_sessions (id, access_token, full_name, email, expires_at) VALUES (?, ?, ?, ?, ?)`,
		id, sess.AccessToken, sess.FullName, sess.Email, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	s.opts.set(w, id)
	return nil
}

func (s *MySQLStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.opts.expire(w)
	id, ok := s.sessionID(r)
	if !ok {
		return nil
	}
	if _, err := s.DB.ExecContext(r.Context(), `DELETE FROM console_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

// PurgeExpired removes every expired row and reports how many went.
func (s *MySQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM console_sessions WHERE expires_at <= ?`, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("session: purge: %w", err)
	}
	return res.RowsAffected()
}
