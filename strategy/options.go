package strategy

type option struct {
	Decorators []Decorator
	Guard      AmountSpecification
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// Decorate wraps the checkout strategy with decorators, first one outermost.
func Decorate(decorators ...Decorator) Option {
	return func(o *option) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}

// Guard rejects amounts that do not satisfy spec before any strategy runs.
func Guard(spec AmountSpecification) Option {
	return func(o *option) {
		o.Guard = spec
	}
}
