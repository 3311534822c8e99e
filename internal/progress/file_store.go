package progress

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists one JSON file per profile under a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// safeKey maps arbitrary profile ids onto filesystem-safe names so a crafted
// id cannot escape the data directory.
func safeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, safeKey(key)+".json")
}

func (f *FileStore) Read(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *FileStore) Write(key string, data []byte) error {
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
