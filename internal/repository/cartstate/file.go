package cartstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"handestiy-storefront/internal/domain"
)

const cartFile = "cart.json"

// File stores the serialized cart as a JSON file under dir.
type File struct {
	fs  afero.Fs
	dir string
}

func NewFile(fs afero.Fs, dir string) *File {
	return &File{fs: fs, dir: dir}
}

func (f *File) path() string {
	return filepath.Join(f.dir, cartFile)
}

func (f *File) Load() (domain.Cart, error) {
	data, err := afero.ReadFile(f.fs, f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("read cart state: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("parse cart state: %w", err)
	}
	for _, l := range cart.Lines {
		if l.ProductID == "" || l.Quantity < 1 || l.UnitPriceCents < 0 {
			return domain.Cart{}, fmt.Errorf("parse cart state: invalid line for product %q", l.ProductID)
		}
	}
	return cart, nil
}

func (f *File) Save(cart domain.Cart) error {
	if err := f.fs.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}
	if err := afero.WriteFile(f.fs, f.path(), data, 0o644); err != nil {
		return fmt.Errorf("write cart state: %w", err)
	}
	return nil
}
