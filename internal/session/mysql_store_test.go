package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newMySQLStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock, time.Time) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMySQLStore(db, testOpts)
	store.now = func() time.Time { return now }
	return store, mock, now
}

func requestWithSession(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: testOpts.CookieName, Value: id})
	return r
}

func TestMySQLStore_Load(t *testing.T) {
	store, mock, now := newMySQLStore(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT access_token, full_name, email, expires_at FROM console_sessions").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"access_token", "full_name", "email", "expires_at"}).
			AddRow("tok", "Ops", "ops@tripcater.com", now.Add(time.Hour)))

	s, err := store.Load(requestWithSession(id))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if s == nil || s.AccessToken != "tok" || s.Email != "ops@tripcater.com" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_LoadExpiredDeletesRow(t *testing.T) {
	store, mock, now := newMySQLStore(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT access_token").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"access_token", "full_name", "email", "expires_at"}).
			AddRow("tok", "", "", now.Add(-time.Minute)))
	mock.ExpectExec("DELETE FROM console_sessions WHERE id").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s, err := store.Load(requestWithSession(id))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if s != nil {
		t.Fatalf("expected no session, got %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_LoadUnknownOrMalformedID(t *testing.T) {
	store, mock, _ := newMySQLStore(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT access_token").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"access_token", "full_name", "email", "expires_at"}))

	if s, err := store.Load(requestWithSession(id)); err != nil || s != nil {
		t.Fatalf("unknown id: got %+v, %v", s, err)
	}
	// not a uuid: the database is never queried
	if s, err := store.Load(requestWithSession("'; DROP TABLE x")); err != nil || s != nil {
		t.Fatalf("malformed id: got %+v, %v", s, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_SaveRotatesID(t *testing.T) {
	store, mock, _ := newMySQLStore(t)
	old := uuid.NewString()

	mock.ExpectExec("DELETE FROM console_sessions WHERE id").
		WithArgs(old).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO console_sessions").
		WithArgs(sqlmock.AnyArg(), "tok", "Ops", "ops@tripcater.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := httptest.NewRecorder()
	err := store.Save(rec, requestWithSession(old), Session{AccessToken: "tok", FullName: "Ops", Email: "ops@tripcater.com"})
	if err != nil {
		t.Fatalf("save error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if _, err := uuid.Parse(cookies[0].Value); err != nil || cookies[0].Value == old {
		t.Fatalf("expected a fresh uuid, got %q", cookies[0].Value)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_Clear(t *testing.T) {
	store, mock, _ := newMySQLStore(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM console_sessions WHERE id").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := httptest.NewRecorder()
	if err := store.Clear(rec, requestWithSession(id)); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	if c := rec.Result().Cookies(); len(c) != 1 || c[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_EnsureSchemaAndPurge(t *testing.T) {
	store, mock, now := newMySQLStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS console_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM console_sessions WHERE expires_at").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema error: %v", err)
	}
	n, err := store.PurgeExpired(ctx)
	if err != nil || n != 3 {
		t.Fatalf("purge = %d, %v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
