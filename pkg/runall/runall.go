// Package runall executes a sequence of cleanup functions to completion,
// guaranteeing every function runs even when earlier ones fail or panic.
// The first failure is reported after all functions have run, which makes
// it suitable for unwinding a stack of acquired resources.
package runall

// Run calls every function left to right, regardless of errors or panics
// from earlier functions. It returns the first non-nil error. If any
// function panicked, the first panic is re-raised after all functions
// have run, taking precedence over returned errors.
func Run(fns ...func() error) error {
	var firstErr error
	var firstPanic any
	panicked := false

	for _, fn := range fns {
		if fn == nil {
			continue
		}
		err, p, ok := call(fn)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if ok && !panicked {
			panicked = true
			firstPanic = p
		}
	}

	if panicked {
		panic(firstPanic)
	}
	return firstErr
}

// call invokes fn, converting a panic into a captured value so the
// remaining functions still run.
func call(fn func() error) (err error, p any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			p = r
			panicked = true
		}
	}()
	err = fn()
	return
}
