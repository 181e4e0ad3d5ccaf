package evalerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuralError(t *testing.T) {
	err := NewStructural("label %q undefined", "loopEnd")
	require.Equal(t, `structural error: label "loopEnd" undefined`, err.Error())
}

func TestConversionError(t *testing.T) {
	err := NewConversion("String", "Int", "got %q", "maybe")
	require.Equal(t, `conversion error: String -> Int: got "maybe"`, err.Error())
}

func TestHostIOErrorUnwraps(t *testing.T) {
	cause := errors.New("broken pipe")
	err := NewHostIO(cause)

	require.Equal(t, "host I/O error: broken pipe", err.Error())
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("while reading: %w", err)
	var hostErr *HostIO
	require.ErrorAs(t, wrapped, &hostErr)
	require.Same(t, cause, hostErr.Cause)
}
