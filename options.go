package fpsample

// DefaultBucketMaxDim is the default value of BUCKET_FPS_MAX_DIM: the
// largest point dimensionality the bucket-FPS variants accept before their
// per-bucket bbox/candidate bookkeeping is considered too large to be
// worthwhile. Callers with legitimately higher-dimensional points can raise
// it via WithMaxDim.
const DefaultBucketMaxDim = 8

// Options holds every tunable the five sampling entry points draw from.
// Not every field applies to every algorithm: Window only affects
// SampleNPDU and SampleNPDUKDTree, Height only SampleBucketKDLine, MaxDim
// only the two bucket variants. Zero-value Options from a struct literal
// (rather than DefaultOptions) validates Start but leaves Window/Height at
// their per-algorithm-meaningful minimums.
type Options struct {
	// Start is the index of the first point, always output[0].
	Start int
	// Window is NPDU's index-window width k.
	Window int
	// Height caps KD-Line's recursion depth.
	Height int
	// MaxDim overrides DefaultBucketMaxDim for the bucket variants.
	MaxDim int
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns the baseline Options: Start 0, Window 0 (the NPDU
// entry points then pick a width from the point count), Height 1, MaxDim
// DefaultBucketMaxDim.
func DefaultOptions() Options {
	return Options{
		Start:  0,
		Window: 0,
		Height: 1,
		MaxDim: DefaultBucketMaxDim,
	}
}

// WithStart overrides the starting point index.
func WithStart(start int) Option {
	return func(o *Options) { o.Start = start }
}

// WithWindow overrides NPDU's index-window width.
func WithWindow(k int) Option {
	return func(o *Options) { o.Window = k }
}

// WithHeight overrides KD-Line's leaf recursion depth.
func WithHeight(h int) Option {
	return func(o *Options) { o.Height = h }
}

// WithMaxDim overrides BUCKET_FPS_MAX_DIM for this call.
func WithMaxDim(d int) Option {
	return func(o *Options) { o.MaxDim = d }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
