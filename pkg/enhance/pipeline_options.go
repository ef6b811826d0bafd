package enhance

type Option func(p *Pipeline)

// WithStages replaces the stage list.
func WithStages(s ...Stage) Option {
	return func(p *Pipeline) {
		p.stages = s
	}
}

// WithObserver registers fn to be called after every stage completes.
func WithObserver(fn func(l *StageLog)) Option {
	return func(p *Pipeline) {
		p.observers = append(p.observers, fn)
	}
}
