package homolith

import "math"

// Default configuration values.
const (
	// DefaultK is the neighbor count used when WithK is not supplied.
	DefaultK = 32
	// DefaultSigma is the significance-threshold multiplier used by
	// FeatureExtractor.
	DefaultSigma = 3.0
	// DefaultEpsilonDensity floors the kth-distance denominator before
	// DensityFiltration inverts it.
	DefaultEpsilonDensity = 1e-10
	// DefaultLimit lets the worker pool pick GOMAXPROCS when zero.
	DefaultLimit = 0
)

const (
	panicKInvalid     = "homolith: WithK: k must be a positive integer"
	panicSigmaInvalid = "homolith: WithSigma: sigma must be a positive, finite real"
	panicEpsInvalid   = "homolith: WithEpsilonDensity: epsilon must be a positive, finite real"
)

// Accelerator is the tri-state accelerator selection policy.
type Accelerator int

const (
	// AcceleratorAuto uses a GPU backend when available and silently falls
	// back to the host path on AcceleratorUnavailable.
	AcceleratorAuto Accelerator = iota
	// AcceleratorRequired fails with AcceleratorUnavailable rather than
	// falling back.
	AcceleratorRequired
	// AcceleratorOff never attempts a GPU backend.
	AcceleratorOff
)

// Option mutates internal configuration. Safe to apply repeatedly.
// Constructors panic only on statically nonsensical values (programmer
// error, independent of any data); data-dependent misconfiguration is
// instead reported by Run as InvalidArgument.
type Option func(*Options)

// Options holds the resolved pipeline configuration. Its fields are
// unexported; callers configure Run via ...Option.
type Options struct {
	k           int
	sigma       float64
	epsilon     float64
	accelerator Accelerator
	limit       int
}

// WithK sets the neighbor count used by KnnIndex. k must be positive; the
// constraint k < n is data-dependent and is checked by Run instead.
func WithK(k int) Option {
	if k <= 0 {
		panic(panicKInvalid)
	}
	return func(o *Options) { o.k = k }
}

// WithSigma sets the significance-threshold multiplier used by
// FeatureExtractor.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		panic(panicSigmaInvalid)
	}
	return func(o *Options) { o.sigma = sigma }
}

// WithEpsilonDensity sets the floor applied to kth-neighbor distances
// before DensityFiltration inverts them.
func WithEpsilonDensity(epsilon float64) Option {
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		panic(panicEpsInvalid)
	}
	return func(o *Options) { o.epsilon = epsilon }
}

// WithAccelerator sets the tri-state accelerator policy.
func WithAccelerator(mode Accelerator) Option {
	return func(o *Options) { o.accelerator = mode }
}

// WithWorkerLimit bounds the internal worker-pool width used by the
// row-independent scan stages (kNN, radius query). Zero means "let the
// pool pick GOMAXPROCS". This is an implementation-level escape hatch, off
// by default, not part of the documented configuration surface.
func WithWorkerLimit(limit int) Option {
	return func(o *Options) { o.limit = limit }
}

func defaultOptions() Options {
	return Options{
		k:           DefaultK,
		sigma:       DefaultSigma,
		epsilon:     DefaultEpsilonDensity,
		accelerator: AcceleratorAuto,
		limit:       DefaultLimit,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}
