//go:build pprof

package profile

// controlOption applies a configuration option to control.
type controlOption func(control) control

// apply applies multiple options to a control.
func apply(c control, opts ...controlOption) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl creates a new control with the provided options.
func newControl(opts ...controlOption) control {
	var c control

	return apply(c, opts...)
}
