package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"notevault-be/internal/apperror"
	"notevault-be/internal/repository/contract"
)

// Persisted collection keys, one JSON file per entity type.
const (
	keyCategories  = "categories"
	keyNotes       = "notes"
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keyTheme       = "theme"
)

// Store is the local fallback persistence layer: a file-backed, JSON
// serialized emulation of the relational schema, used when no remote backend
// is configured. All operations are synchronous in effect; the asynchronous
// signatures exist to match the remote adapter's contract. A single mutex
// serializes access within this process. Concurrent writers from other
// processes race: last write wins, no locking.
type Store struct {
	dataDir string
	mu      sync.Mutex
}

func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, apperror.Wrap(apperror.KindGeneric, "failed to create local data dir", err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) Name() string {
	return "local"
}

func (s *Store) Notes() contract.NoteRepository {
	return &noteRepository{store: s}
}

func (s *Store) Categories() contract.CategoryRepository {
	return &categoryRepository{store: s}
}

func (s *Store) Users() contract.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// read unmarshals the collection stored under key into v. It reports whether
// the collection existed; a missing file is not an error.
func (s *Store) read(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, apperror.Wrap(apperror.KindGeneric, "failed to read local collection "+key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, apperror.Wrap(apperror.KindGeneric, "corrupt local collection "+key, err)
	}
	return true, nil
}

func (s *Store) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperror.Wrap(apperror.KindGeneric, "failed to encode local collection "+key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return apperror.Wrap(apperror.KindGeneric, "failed to write local collection "+key, err)
	}
	return nil
}

func (s *Store) remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return apperror.Wrap(apperror.KindGeneric, "failed to remove local collection "+key, err)
	}
	return nil
}

// Theme returns the persisted UI theme preference, empty when unset.
func (s *Store) Theme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var theme string
	if _, err := s.read(keyTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(keyTheme, theme)
}
