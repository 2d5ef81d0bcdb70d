package runall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSucceed(t *testing.T) {
	var a, b int

	err := Run(
		func() error { a = 1; return nil },
		func() error { b = 2; return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestRunContinuesPastError(t *testing.T) {
	var a, b int
	boom := errors.New("boom")

	err := Run(
		func() error { a = 1; return boom },
		func() error { b = 2; return nil },
	)

	assert.Equal(t, boom, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b, "later functions must still run")
}

func TestRunReturnsFirstError(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	err := Run(
		func() error { return first },
		func() error { return second },
	)

	assert.Equal(t, first, err)
}

func TestRunContinuesPastPanic(t *testing.T) {
	var a, b int

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "panic must propagate")
			assert.Equal(t, "kaboom", r)
		}()
		_ = Run(
			func() error { a = 1; return nil },
			func() error { panic("kaboom") },
			func() error { b = 2; return nil },
		)
		t.Fatal("Run should have panicked")
	}()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b, "functions after the panic must still run")
}

func TestRunRethrowsFirstPanic(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "first panic", r)
	}()

	_ = Run(
		func() error { panic("first panic") },
		func() error { panic("second panic") },
	)
}

func TestRunSkipsNilFunctions(t *testing.T) {
	var a int

	err := Run(nil, func() error { a = 1; return nil }, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, a)
}

func TestRunEmpty(t *testing.T) {
	assert.NoError(t, Run())
}
