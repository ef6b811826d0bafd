package enhance

import (
	"image"
	"time"

	"github.com/samber/lo"
)

type Report struct {
	items []*StageLog
}

type StageLog struct {
	Stage   string
	Bounds  image.Rectangle
	Elapsed time.Duration
}

func (r *Report) reset() {
	r.items = nil
}

func (r *Report) push(item *StageLog) {
	r.items = append(r.items, item)
}

func (r *Report) Logs() []*StageLog {
	return r.items
}

// Last returns the most recent stage log, or nil before any stage ran.
func (r *Report) Last() *StageLog {
	log, _ := lo.Last(r.items)
	return log
}

func (r *Report) Find(stage string) (*StageLog, bool) {
	return lo.Find(r.items, func(l *StageLog) bool { return l.Stage == stage })
}

func (r *Report) Total() time.Duration {
	return lo.Reduce(r.items, func(sum time.Duration, l *StageLog, _ int) time.Duration {
		return sum + l.Elapsed
	}, 0)
}
