package policy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var _ GrantStore = (*FileGrantStore)(nil)

// fileStoreConfig holds configuration for the FileGrantStore.
type fileStoreConfig struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     filepath.Join(os.Getenv("HOME"), ".caplib", "grants.yaml"),
		dirPerm:  0o755,
		filePerm: 0o600,
	}
}

// FileStoreOption configures a FileGrantStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the grants file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		if path != "" {
			c.path = path
		}
	}
}

// WithFilePermissions sets the file permissions for the grants file.
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.filePerm = perm
	}
}

// WithDirPermissions sets the directory permissions for the grants directory.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.dirPerm = perm
	}
}

// FileGrantStore persists a GrantSet as YAML on the local filesystem.
type FileGrantStore struct {
	cfg fileStoreConfig
}

// NewFileGrantStore creates a grant store backed by a YAML file.
func NewFileGrantStore(opts ...FileStoreOption) *FileGrantStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileGrantStore{cfg: cfg}
}

// ConfigPath returns the path of the grants file.
func (s *FileGrantStore) ConfigPath() string {
	return s.cfg.path
}

// Load reads the grant set from disk.
// A missing file or directory means no grants yet: an empty set, not an error.
func (s *FileGrantStore) Load() (*GrantSet, error) {
	dir := filepath.Dir(s.cfg.path)
	base := filepath.Base(s.cfg.path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &GrantSet{}, nil
		}
		return nil, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return &GrantSet{}, nil
		}
		return nil, fmt.Errorf("failed to open grants file %q: %w", s.cfg.path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read grants file %q: %w", s.cfg.path, err)
	}

	var grants GrantSet
	if err := yaml.Unmarshal(data, &grants); err != nil {
		return nil, fmt.Errorf("failed to parse grants file %q: %w", s.cfg.path, err)
	}
	return &grants, nil
}

// Save writes the grant set to disk, creating the directory if needed.
func (s *FileGrantStore) Save(grants *GrantSet) error {
	if grants == nil {
		return fmt.Errorf("cannot save nil grant set")
	}

	data, err := yaml.Marshal(grants)
	if err != nil {
		return fmt.Errorf("failed to marshal grants: %w", err)
	}

	dir := filepath.Dir(s.cfg.path)
	if err := os.MkdirAll(dir, s.cfg.dirPerm); err != nil {
		return fmt.Errorf("failed to create grants directory %q: %w", dir, err)
	}

	if err := os.WriteFile(s.cfg.path, data, s.cfg.filePerm); err != nil {
		return fmt.Errorf("failed to write grants file %q: %w", s.cfg.path, err)
	}
	return nil
}
