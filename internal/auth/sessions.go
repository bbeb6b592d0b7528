package auth

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
)

// Session data keys
const (
	SessionKeyFirstName = "first_name"
	SessionKeyLastName  = "last_name"
	SessionKeyLoginAt   = "login_at"
)

// SessionManager wraps scs.SessionManager with student-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a session manager backed by the sqlite database.
// The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewSessionManager(sqlDB *sql.DB, cfg config.Session) (*SessionManager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := newManager(cfg)
	sm.Store = sqlite3store.New(sqlDB)
	return &SessionManager{SessionManager: sm}, nil
}

// NewMemorySessionManager keeps sessions in process memory. Used with mysql and postgres.
func NewMemorySessionManager(cfg config.Session) *SessionManager {
	return &SessionManager{SessionManager: newManager(cfg)}
}

func newManager(cfg config.Session) *scs.SessionManager {
	sm := scs.New()

	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	sm.Lifetime = lifetime
	sm.IdleTimeout = lifetime / 2

	sm.Cookie.Name = "quiz_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"
	return sm
}

// LoginStudent stores the student in the session, renewing the token first.
func (sm *SessionManager) LoginStudent(r *http.Request, student entities.Student) error {
	// Renew token to prevent session fixation
	if err := sm.RenewToken(r.Context()); err != nil {
		return err
	}

	sm.Put(r.Context(), SessionKeyFirstName, student.FirstName)
	sm.Put(r.Context(), SessionKeyLastName, student.LastName)
	sm.Put(r.Context(), SessionKeyLoginAt, time.Now().Unix())
	return nil
}

// LogoutStudent destroys the session.
func (sm *SessionManager) LogoutStudent(r *http.Request) error {
	return sm.Destroy(r.Context())
}

// Student returns the logged in student, or false when nobody is logged in.
func (sm *SessionManager) Student(r *http.Request) (entities.Student, bool) {
	student := entities.Student{
		FirstName: sm.GetString(r.Context(), SessionKeyFirstName),
		LastName:  sm.GetString(r.Context(), SessionKeyLastName),
	}
	if student.FirstName == "" || student.LastName == "" {
		return entities.Student{}, false
	}
	return student, true
}

// LoginAt returns when the student logged in, zero if unknown.
func (sm *SessionManager) LoginAt(r *http.Request) time.Time {
	ts := sm.GetInt64(r.Context(), SessionKeyLoginAt)
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}
