package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"netbank/internal/domain/account"
	"netbank/internal/infrastructure/corebank"
	"netbank/internal/shared/auth"
)

var (
	ErrNotFound = errors.New("session not found")
	// ErrRoleChange guards the state machine: a live session never moves
	// between customer and admin without passing through logout.
	ErrRoleChange = errors.New("session role cannot change")
	// ErrNoCredential is returned when a session has no sealed credential
	// to prove identity with (e.g. admin sessions on customer endpoints).
	ErrNoCredential = errors.New("session holds no credential")
)

// Session is one authenticated browser session. It owns the identity,
// the sealed per-call credential, the session's account cache, and the
// pending-landing flag that makes the post-login redirect fire once per
// identity change.
type Session struct {
	ID        string
	CreatedAt time.Time

	vault *auth.Vault

	mu             sync.Mutex
	identity       Identity
	sealedPassword []byte
	landingPending bool
	cache          *account.Cache
}

// Identity returns the current identity snapshot.
func (s *Session) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// ReplaceIdentity swaps the identity wholesale, as after a confirmed
// profile update. The role must not change; partial-field mutation is
// not possible by construction.
func (s *Session) ReplaceIdentity(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id.Role != s.identity.Role {
		return ErrRoleChange
	}
	s.identity = id
	s.landingPending = true
	return nil
}

// ConsumeLanding reports whether the post-login landing redirect is
// still owed, and marks it done. True at most once per identity change.
func (s *Session) ConsumeLanding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.landingPending {
		return false
	}
	s.landingPending = false
	return true
}

// Cache returns the session's account cache (nil for admin sessions,
// which own no accounts).
func (s *Session) Cache() *account.Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache
}

// Credentials opens the sealed credential for a mutating API call. The
// plaintext never outlives the request that needed it.
func (s *Session) Credentials() (corebank.Credentials, error) {
	s.mu.Lock()
	identity := s.identity
	sealed := s.sealedPassword
	s.mu.Unlock()

	if !identity.Authenticated() || len(sealed) == 0 {
		return corebank.Credentials{}, ErrNoCredential
	}
	password, err := s.vault.Open(sealed)
	if err != nil {
		return corebank.Credentials{}, err
	}
	return corebank.Credentials{Username: identity.User.EmailID, Password: password}, nil
}

// Store is the application-root-owned session registry.
type Store struct {
	vault *auth.Vault

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(vault *auth.Vault) *Store {
	return &Store{
		vault:    vault,
		sessions: make(map[string]*Session),
	}
}

// Create opens a session for a freshly authenticated identity. A
// non-empty password is sealed immediately; customer sessions get an
// account cache, admin sessions do not.
func (s *Store) Create(id Identity, password string, cache *account.Cache) (*Session, error) {
	if !id.Authenticated() {
		return nil, errors.New("cannot create session for anonymous identity")
	}

	var sealed []byte
	if password != "" {
		var err error
		sealed, err = s.vault.Seal(password)
		if err != nil {
			return nil, err
		}
	}

	sess := &Session{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now(),
		vault:          s.vault,
		identity:       id,
		sealedPassword: sealed,
		landingPending: true,
		cache:          cache,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get resolves a session by ID.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete ends a session. The state machine transition to anonymous is
// synchronous: once Delete returns, the identity is gone.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
