package store

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"texenhance/pkg/bitmap"
)

// New returns a Store reading and writing through fs. A non-empty root
// confines all paths to that existing directory.
func New(fs afero.Fs, root string, logger *zap.Logger) (*Store, error) {
	sfs, err := newFs(fs, root)
	if err != nil {
		return nil, fmt.Errorf("create store failed: %w", err)
	}
	return &Store{fs: sfs, log: logger}, nil
}

type Store struct {
	fs  afero.Fs
	log *zap.Logger
}

// Load decodes name into a BGR24 buffer. EXIF orientation is applied.
func (s *Store) Load(name string) (*bitmap.BGR24, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s failed: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image decode %s failed: %w", name, err)
	}

	buf := bitmap.Encode(img)
	s.log.With(
		zap.String("file", name),
		zap.Int("w", buf.Rect.Dx()),
		zap.Int("h", buf.Rect.Dy()),
	).Debug("loaded")

	return buf, nil
}

// Save encodes img into name, the format follows the extension. Output is
// written to a temporary sibling first and renamed into place.
func (s *Store) Save(name string, img *bitmap.BGR24) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("save %s failed: %w", name, err)
	}

	tmp := tmpName(name)
	f, err := s.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s failed: %w", name, err)
	}

	if err := imaging.Encode(f, img.NRGBA(), format); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("encode %s failed: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write %s failed: %w", name, err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %s failed: %w", name, err)
	}

	s.log.With(zap.String("file", name), zap.String("format", format.String())).Debug("saved")
	return nil
}

// SaveAll writes img to every name independently and stops at the first
// failure. Files already written are left in place.
func (s *Store) SaveAll(img *bitmap.BGR24, names ...string) error {
	for _, name := range names {
		if err := s.Save(name, img); err != nil {
			return err
		}
	}
	return nil
}
