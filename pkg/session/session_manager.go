package session

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	// Manager holds the signed-in sessions of the storefront. A session is
	// created on login/registration, read on every authenticated page, and
	// destroyed on logout. Sessions survive restarts through a JSON file,
	// the server-side counterpart of the browser's local storage.
	Manager interface {
		Create(token string, user entities.User) (*Session, error)
		Get(id string) (*Session, error)
		Destroy(id string) error
	}

	Session struct {
		ID        string        `json:"id"`
		Token     string        `json:"token"`
		User      entities.User `json:"user"`
		CreatedAt time.Time     `json:"created_at"`
	}

	fileManager struct {
		path     string
		mu       sync.Mutex
		sessions map[string]*Session
	}
)

// NewManager loads existing sessions from path; a missing or unreadable file
// starts empty. An empty path keeps sessions in memory only.
func NewManager(path string) Manager {
	m := &fileManager{
		path:     path,
		sessions: make(map[string]*Session),
	}
	m.load()
	return m
}

func (m *fileManager) Create(token string, user entities.User) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:        uuid.New().String(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	m.sessions[s.ID] = s

	if err := m.save(); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *fileManager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if expired(s.Token) {
		delete(m.sessions, id)
		_ = m.save()
		return nil, domain.ErrSessionExpired
	}

	return s, nil
}

func (m *fileManager) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return m.save()
}

// expired inspects the bearer credential's exp claim without verifying the
// signature; the signing key belongs to the remote API. A token that cannot
// be parsed or carries no expiry is kept and left for the server to reject.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

func (m *fileManager) load() {
	if m.path == "" {
		return
	}
	raw, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, &m.sessions)
}

func (m *fileManager) save() error {
	if m.path == "" {
		return nil
	}
	raw, err := json.Marshal(m.sessions)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, raw, 0600)
}
