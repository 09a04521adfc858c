package rle

// Color selects how decoded pixels are presented to boolean operators.
// The naming follows https://en.wikipedia.org/wiki/Binary_image#Interpretation.
type Color int

const (
	// Vanilla hands operators the decoded value: true is white, false is black.
	Vanilla Color = iota
	// Chocolate hands operators the ink value: true is black, false is white.
	Chocolate
)

// String returns the interpretation name.
func (c Color) String() string {
	switch c {
	case Vanilla:
		return "Vanilla"
	case Chocolate:
		return "Chocolate"
	default:
		return "Unknown"
	}
}

// DefaultThreshold is the luminance below which FromImage treats a pixel as black.
const DefaultThreshold uint8 = 128

// Option configures construction and composition.
//
// Example:
//
//	// Spread rows over four goroutines, operators see ink values.
//	out, err := rle.Combine(a, b, rle.OpAnd,
//	    rle.WithWorkers(4), rle.WithColor(rle.Chocolate))
type Option func(*options)

// options holds the optional configuration shared by all operations.
type options struct {
	workers   int
	color     Color
	threshold uint8
}

// defaultOptions returns the sequential, Vanilla configuration.
func defaultOptions() options {
	return options{
		workers:   1,
		color:     Vanilla,
		threshold: DefaultThreshold,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWorkers sets the number of goroutines used to process rows.
// Values below 2 keep processing on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithColor sets the pixel interpretation seen by boolean operators.
// A Raster created with this option uses it for And, Or and Xor.
func WithColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithThreshold sets the luminance cut-off used by FromImage.
// Pixels with luminance strictly below the threshold become black.
func WithThreshold(t uint8) Option {
	return func(o *options) {
		o.threshold = t
	}
}
