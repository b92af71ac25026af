package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndIsType(t *testing.T) {
	err := New(ErrorTypeValidation, "bad input")
	assert.Equal(t, "validation: bad input", err.Error())
	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeParse))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, ErrorTypeFile, "failed to write table")

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsType(err, ErrorTypeFile))
	assert.Contains(t, err.Error(), "failed to write table")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapReclassifies(t *testing.T) {
	inner := New(ErrorTypeNotFound, "unknown column")
	outer := Wrap(inner, ErrorTypeData, "failed to decode row")

	// The outermost type wins; the original error stays reachable.
	assert.True(t, IsType(outer, ErrorTypeData))
	assert.False(t, IsType(outer, ErrorTypeNotFound))
	assert.ErrorIs(t, outer, inner)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeParse, "bad line").
		WithDetail("line", 42).
		WithDetail("path", "Weapons.txt")

	require.NotNil(t, err.Details)
	assert.Equal(t, 42, err.Details["line"])
	assert.Equal(t, "Weapons.txt", err.Details["path"])
}

func TestStackCaptured(t *testing.T) {
	err := Newf(ErrorTypeInternal, "boom %d", 7)
	assert.NotEmpty(t, err.Stack)
}
