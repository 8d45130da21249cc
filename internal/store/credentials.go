package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/imgautam07/share-in-web/internal/logger"
)

// InMemoryPath keeps the credential slot in-process only. Used by tests and
// available via configuration for throwaway sessions.
const InMemoryPath = ":memory:"

type fileCredentialStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type persistedCredentials struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

// NewCredentialStore opens the credential slot persisted at path, creating
// parent directories as needed. An existing file is read once at construction;
// a missing file simply means an empty slot. Passing InMemoryPath (or an empty
// path) yields a volatile store that never touches disk.
func NewCredentialStore(path string, log *logger.Logger) (CredentialStore, error) {
	if log == nil {
		log = logger.Nop()
	}

	inMemory := path == "" || path == InMemoryPath
	s := &fileCredentialStore{path: path, inMemory: inMemory, logger: log}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save implements [CredentialStore]. The token replaces whatever was stored
// before; whitespace is trimmed so a padded header value round-trips cleanly.
func (s *fileCredentialStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)
	return s.persist()
}

// Load implements [CredentialStore].
func (s *fileCredentialStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// Clear implements [CredentialStore]. Removes the persisted file entirely so
// no stale credential remains on disk. Idempotent.
func (s *fileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.inMemory {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}

// Token returns the stored token or an empty string. It satisfies the
// transport layer's token-source contract: the value is re-read on every call
// so the interceptor always sees the current slot.
func (s *fileCredentialStore) Token() string {
	token, err := s.Load()
	if err != nil {
		return ""
	}
	return token
}

func (s *fileCredentialStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read credential file: %w", err)
	}

	var creds persistedCredentials
	if err = json.Unmarshal(data, &creds); err != nil {
		// A corrupt file is indistinguishable from no session; start clean.
		s.logger.Warn().Err(err).Str("path", s.path).Msg("corrupt credential file, ignoring")
		return nil
	}

	s.token = strings.TrimSpace(creds.Token)
	return nil
}

func (s *fileCredentialStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.Marshal(persistedCredentials{Token: s.token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
