package vlist

// Option configures an engine component.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for engine options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = vlist.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	list := vlist.NewList(spec, vlist.WithOpt(OptCustomThing, value))
//
//	// Read in component code
//	value := vlist.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that build on the engine.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Windowing Options ---
var (
	// OptOverscan is the number of extra items materialized beyond each edge
	// of the strictly visible range.
	OptOverscan = NewOptKey("overscan", 0)

	// OptMinHeight enables clamping of invalid or too-small item heights.
	// Zero (the default) means invalid heights are rejected with an error.
	OptMinHeight = NewOptKey[float32]("minHeight", 0)
)

// --- Scroller Options ---
var (
	// OptEndThreshold is the scroll-depth fraction at which the end-reached
	// signal fires.
	OptEndThreshold = NewOptKey[float32]("endThreshold", 0.8)

	// OptSmoothScroll enables animated scrolling toward the target offset.
	OptSmoothScroll = NewOptKey("smoothScroll", false)

	// OptSmoothSpeed is the convergence speed for smooth scrolling.
	// Higher is faster.
	OptSmoothSpeed = NewOptKey[float32]("smoothSpeed", 15)

	// OptPageFraction is the fraction of the viewport scrolled by
	// PageUp/PageDown.
	OptPageFraction = NewOptKey[float32]("pageFraction", 0.8)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithOverscan sets how many extra items are materialized beyond each edge of
// the visible range, to mask pop-in during fast scrolling.
func WithOverscan(n int) Option { return WithOpt(OptOverscan, n) }

// WithMinHeight clamps item heights to a positive minimum instead of
// rejecting invalid measurements with an error.
func WithMinHeight(h float32) Option { return WithOpt(OptMinHeight, h) }

// WithEndThreshold sets the scroll-depth fraction (0..1] at which the
// end-reached signal fires. The default is 0.8.
func WithEndThreshold(f float32) Option { return WithOpt(OptEndThreshold, f) }

// WithSmoothScroll enables animated scrolling; call Update with the frame
// delta time to advance the animation.
func WithSmoothScroll() Option { return WithOpt(OptSmoothScroll, true) }

// WithSmoothSpeed sets the smooth-scroll convergence speed.
func WithSmoothSpeed(speed float32) Option { return WithOpt(OptSmoothSpeed, speed) }

// WithPageFraction sets how much of the viewport a page scroll covers.
func WithPageFraction(f float32) Option { return WithOpt(OptPageFraction, f) }
