package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/credence/internal/domain"
)

// FileHistory implements domain.AnalysisHistory using JSON file storage
// under <dataDir>/history/analyses.json.
type FileHistory struct {
	dataDir string
	mu      sync.Mutex
}

func New(dataDir string) *FileHistory {
	return &FileHistory{dataDir: dataDir}
}

func (h *FileHistory) Save(entry domain.AnalysisEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := h.path()
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load() ([]domain.AnalysisEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *FileHistory) load() ([]domain.AnalysisEntry, error) {
	data, err := os.ReadFile(h.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AnalysisEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *FileHistory) path() string {
	return filepath.Join(h.dataDir, "history", "analyses.json")
}
