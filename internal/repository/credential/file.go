package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const tokenFile = "admin_token"

// File stores the token as a plain file under dir.
type File struct {
	fs  afero.Fs
	dir string
}

func NewFile(fs afero.Fs, dir string) *File {
	return &File{fs: fs, dir: dir}
}

func (f *File) path() string {
	return filepath.Join(f.dir, tokenFile)
}

func (f *File) Load() (string, error) {
	data, err := afero.ReadFile(f.fs, f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read admin token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *File) Save(token string) error {
	if err := f.fs.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := afero.WriteFile(f.fs, f.path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write admin token: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	err := f.fs.Remove(f.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove admin token: %w", err)
	}
	return nil
}
