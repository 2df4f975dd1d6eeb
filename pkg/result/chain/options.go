package chain

import "context"

type OptionKey string

const LoopOptionKey OptionKey = "loop_options"

// DefaultMaxIterations bounds RepeatUntil and While when the context carries
// no LoopOptions.
const DefaultMaxIterations = 1 << 16

type MaxLimitOption struct {
	Value int
}

type LoopOptions struct {
	MaxIterations MaxLimitOption
}

func WithMaxIterations(ctx context.Context, maxIterations int) context.Context {
	return context.WithValue(ctx, LoopOptionKey, LoopOptions{MaxLimitOption{Value: maxIterations}})
}

func MaxIterations(ctx context.Context, defaultMaxIterations int) int {
	options, ok := ctx.Value(LoopOptionKey).(LoopOptions)
	if ok {
		return options.MaxIterations.Value
	}
	return defaultMaxIterations
}
