package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/abdidvp/credence/internal/domain"
)

// Store is a file-based implementation of domain.ContentStore. All items
// live in one JSON array under <dataDir>/content/content.json.
type Store struct {
	dataDir string
	mu      sync.Mutex
}

// New creates a file-based content store rooted at dataDir.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Save adds or replaces the item with the same hash.
func (s *Store) Save(item domain.StoredContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].Hash == item.Hash {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := os.MkdirAll(filepath.Dir(s.path()), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(), data, 0644)
}

// Get returns the item stored under hash, or domain.ErrContentNotFound.
func (s *Store) Get(hash string) (*domain.StoredContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Hash == hash {
			return &item, nil
		}
	}
	return nil, domain.ErrContentNotFound
}

// Stats reports the item count and when the store was last written.
func (s *Store) Stats() (domain.StorageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return domain.StorageStats{}, err
	}

	stats := domain.StorageStats{TotalItems: len(items), StoragePath: s.path()}
	if info, err := os.Stat(s.path()); err == nil {
		stats.LastModified = info.ModTime().UTC().Format(time.RFC3339)
	}
	return stats, nil
}

// load reads all items. A missing file is an empty store.
func (s *Store) load() ([]domain.StoredContent, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.StoredContent
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, "content", "content.json")
}
