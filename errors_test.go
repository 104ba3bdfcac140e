package rle8_test

import (
	"errors"
	"io"
	"testing"

	"github.com/dargueta/rle8"
	"github.com/stretchr/testify/assert"
)

func TestCodecErrorWithMessage(t *testing.T) {
	newErr := rle8.ErrInvalidArgument.WithMessage("asdfqwerty")
	assert.Equal(
		t, "Invalid argument: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, rle8.ErrInvalidArgument)
	assert.NotErrorIs(t, newErr, rle8.ErrIOFailed)
}

func TestCodecErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := rle8.ErrIOFailed.Wrap(originalErr)
	expectedMessage := "Input/output error: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, rle8.ErrIOFailed, "codec error not set as parent")
}

func TestCodecErrorWrapThenMessage(t *testing.T) {
	newErr := rle8.ErrMalformedData.
		Wrap(io.ErrUnexpectedEOF).
		WithMessage("missing repeat count after two 07 bytes")

	assert.Equal(
		t,
		"Malformed encoded data: unexpected EOF: missing repeat count after two 07 bytes",
		newErr.Error(),
	)
	assert.ErrorIs(t, newErr, rle8.ErrMalformedData)
	assert.ErrorIs(t, newErr, io.ErrUnexpectedEOF)
}
