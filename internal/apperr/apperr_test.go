package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomod/internal/apperr"
)

var (
	errSample = &apperr.Error{Message: "unexpected value: %v"}
	errOther  = &apperr.Error{Message: "other"}
)

func TestFmt(t *testing.T) {
	err := errSample.Fmt(42)

	assert.Equal(t, "unexpected value: 42", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.NotErrorIs(t, err, errOther)
	assert.Equal(t, "unexpected value: %v", errSample.Message)
}

func TestWrap(t *testing.T) {
	err := errOther.Wrap(io.EOF)

	assert.Equal(t, "other: EOF", err.Error())
	assert.ErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFmtThenWrapKeepsSentinel(t *testing.T) {
	err := errSample.Fmt("x").Wrap(io.ErrUnexpectedEOF)

	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "unexpected value: x: unexpected EOF", err.Error())
}

func TestAs(t *testing.T) {
	var target *apperr.Error

	wrapped := errors.Join(io.EOF, errOther.Fmt())

	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "other", target.Message)
}
