package session

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	s, err := token.SignedString([]byte("remote-api-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestCreateGetDestroy(t *testing.T) {
	m := NewManager("")

	sess, err := m.Create("tok", entities.User{ID: "u1", Name: "Asha", Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("Create returned empty session ID")
	}

	got, err := m.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token != "tok" || got.User.Name != "Asha" {
		t.Errorf("Get = %+v", got)
	}

	if err := m.Destroy(sess.ID); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := m.Get(sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Get after Destroy = %v, want ErrSessionNotFound", err)
	}
}

func TestGet_UnknownID(t *testing.T) {
	m := NewManager("")
	if _, err := m.Get("nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrSessionNotFound", err)
	}
}

func TestGet_ExpiredCredential(t *testing.T) {
	m := NewManager("")
	tok := signedToken(t, time.Now().Add(-time.Hour))

	sess, err := m.Create(tok, entities.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := m.Get(sess.ID); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("Get(expired) = %v, want ErrSessionExpired", err)
	}

	// expired sessions are removed, so a second look is plain not-found
	if _, err := m.Get(sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("second Get = %v, want ErrSessionNotFound", err)
	}
}

func TestGet_OpaqueTokenIsKept(t *testing.T) {
	m := NewManager("")
	sess, err := m.Create("not-a-jwt", entities.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := m.Get(sess.ID); err != nil {
		t.Errorf("Get(opaque token) = %v, want nil; expiry is the server's call", err)
	}
}

func TestPersistenceAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	tok := signedToken(t, time.Now().Add(time.Hour))

	first := NewManager(path)
	sess, err := first.Create(tok, entities.User{ID: "u1", Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := NewManager(path)
	got, err := second.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get from reloaded manager: %v", err)
	}
	if got.User.Role != domain.RoleOwner {
		t.Errorf("reloaded session = %+v", got)
	}
}
