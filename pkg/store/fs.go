package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

func newFs(base afero.Fs, path string) (afero.Fs, error) {
	if path == "" {
		return base, nil
	}
	if exists, err := afero.DirExists(base, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(base, path), nil
}

// tmpName returns a unique sibling of name, keeping its extension so the
// encoder can still be picked from it.
func tmpName(name string) string {
	dir, base := filepath.Split(name)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s%s", base, xid.New().String(), filepath.Ext(name)))
}
