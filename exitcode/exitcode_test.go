package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, OK, Status(nil))
	assert.Equal(t, Credential, Status(Errorf(Credential, "boom")))
	assert.Equal(t, Internal, Status(errors.New("plain")))

	// The code survives wrapping.
	wrapped := fmt.Errorf("context: %w", New(NotFound, errors.New("gone")))
	assert.Equal(t, NotFound, Status(wrapped))
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("base")
	err := New(ToolNotFound, base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "base", err.Error())
}
