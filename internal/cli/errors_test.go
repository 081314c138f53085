package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOError(t *testing.T) {
	underlying := os.ErrPermission
	err := &IOError{Op: "read", Path: "employees.txt", Err: underlying}

	assert.Equal(t, "failed to read employees.txt: permission denied", err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestIOErrorAs(t *testing.T) {
	var err error = &IOError{Op: "write", Path: "employees.txt", Err: os.ErrClosed}

	// Wrapping must not hide the type from errors.As
	wrapped := fmt.Errorf("saving roster: %w", err)

	var ioErr *IOError
	assert.True(t, errors.As(wrapped, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: boom", FormatError(errors.New("boom")))
}
