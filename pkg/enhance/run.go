package enhance

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"texenhance/pkg/bitmap"
)

type Store interface {
	Load(name string) (*bitmap.BGR24, error)
	SaveAll(img *bitmap.BGR24, names ...string) error
}

// Run loads input, processes it and writes the result to every output.
// Errors name the failing stage: load, one of the pipeline stages, or save.
func (p *Pipeline) Run(st Store, input string, outputs ...string) error {
	log := p.log.With(zap.String("input", input), zap.Strings("outputs", outputs))

	img, err := st.Load(input)
	if err != nil {
		return errors.Wrap(err, "stage load")
	}

	img, err = p.Process(img)
	if err != nil {
		return err
	}

	if err := st.SaveAll(img, outputs...); err != nil {
		return errors.Wrap(err, "stage save")
	}

	log.With(
		zap.Int("w", img.Rect.Dx()),
		zap.Int("h", img.Rect.Dy()),
		zap.Duration("elapsed", p.report.Total()),
	).Info("enhanced")
	return nil
}
