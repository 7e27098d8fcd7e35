package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/divyam007142/Railway-reservation/internal/domain"
)

// Session binds an access token to the identity it was issued for. The two
// are persisted, loaded and cleared together; an identity without a token
// can never be observed.
type Session struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
}

// Expired reports whether the access token carries an exp claim in the
// past. The token is not verified here; the server remains the authority
// and will answer 401 regardless.
func (s *Session) Expired(now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Store owns the persisted session file. It is the only writer of session
// state: views read through it, and only the guard and explicit logout
// mutate it.
type Store struct {
	path string

	mu  sync.Mutex
	cur *Session
}

// NewStore creates a Store persisting at path and loads any existing
// session from disk. A corrupt or unreadable file is treated as no session.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.cur = s.read()
	return s
}

// Current returns the active session, or nil when none exists or the
// persisted token has expired.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return nil
	}
	if s.cur.Expired(time.Now()) {
		return nil
	}
	copied := *s.cur
	return &copied
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	if cur := s.Current(); cur != nil {
		return cur.Token
	}
	return ""
}

// Save persists token and identity as one unit.
func (s *Store) Save(token string, identity domain.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{Token: token, Identity: identity}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.cur = sess
	return nil
}

// Clear removes both token and identity in one step. Removing the file and
// the in-memory session together is what keeps teardown atomic: there is no
// state where one half survives.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	_ = os.Remove(s.path)
}

func (s *Store) read() *Session {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil
	}
	if sess.Token == "" || sess.Identity.Validate() != nil {
		return nil
	}
	return &sess
}
