package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType_ThroughWrapping(t *testing.T) {
	base := &codedError{code: "DONOR_NOT_FOUND"}
	err := Wrap(WithStack(base), "get donor")

	got, ok := AsType[*codedError](err)

	require.True(t, ok)
	assert.Same(t, base, got)
	assert.True(t, Is(err, base))
	assert.Equal(t, "get donor: DONOR_NOT_FOUND", err.Error())
}

func TestAsType_NoMatch(t *testing.T) {
	got, ok := AsType[*codedError](New("plain"))

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, WithStack(nil))
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestWrapf_KeepsStack(t *testing.T) {
	err := Wrapf(New("boom"), "change %d", 7)

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapf_KeepsStack")
}
