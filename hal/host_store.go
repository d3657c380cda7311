//go:build !tinygo

package hal

import (
	"os"
	"path/filepath"
	"sync"
)

// hostStore keeps named text resources as plain files under a data
// directory (LUMEN_DATA, default current directory).
type hostStore struct {
	mu  sync.Mutex
	dir string
}

func newHostStore() *hostStore {
	dir := os.Getenv("LUMEN_DATA")
	if dir == "" {
		dir = "."
	}
	return &hostStore{dir: dir}
}

func (s *hostStore) ReadResource(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
}

func (s *hostStore) WriteResource(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0o644)
}
