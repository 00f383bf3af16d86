package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadStore reads the store from the given file. A missing file is not an
// error, it yields an empty store with default settings.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", path, err)
	}
	defer f.Close()

	store, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", path, err)
	}
	return store, nil
}

// SaveStore persists the full store snapshot to the given file. The write
// goes through a temporary file renamed into place, so a failed save
// leaves the previous file untouched.
func SaveStore(path string, store *Store) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for store %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, store); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", path, err)
	}
	return nil
}

// DefaultStorePath returns the per-user location of the store file,
// under the platform's user config directory.
func DefaultStorePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// fall back to the working directory
		return "portfolio_data.json"
	}
	return filepath.Join(base, "ivt", "portfolio_data.json")
}
