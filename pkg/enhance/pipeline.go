package enhance

import (
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"texenhance/pkg/bitmap"
)

func New(logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		log:    logger,
		stages: NewParams().Stages(),
		report: &Report{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Pipeline struct {
	log       *zap.Logger
	stages    []Stage
	observers []func(l *StageLog)
	report    *Report
}

func (p *Pipeline) StageNames() []string {
	return lo.Map(p.stages, func(s Stage, _ int) string { return s.Name() })
}

func (p *Pipeline) Report() *Report {
	return p.report
}

// Process runs every stage in order. img is consumed: on success the returned
// buffer is the only valid one.
func (p *Pipeline) Process(img *bitmap.BGR24) (*bitmap.BGR24, error) {
	p.report.reset()

	for _, s := range p.stages {
		start := time.Now()
		out, err := s.Apply(img)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s", s.Name())
		}
		img = out

		item := &StageLog{
			Stage:   s.Name(),
			Bounds:  img.Bounds(),
			Elapsed: time.Since(start),
		}
		p.report.push(item)

		p.log.With(
			zap.String("stage", item.Stage),
			zap.Int("w", item.Bounds.Dx()),
			zap.Int("h", item.Bounds.Dy()),
			zap.String("size", bytesize.New(float64(len(img.Pix))).String()),
			zap.Duration("elapsed", item.Elapsed),
		).Debug("stage done")

		for _, fn := range p.observers {
			fn(item)
		}
	}

	return img, nil
}
