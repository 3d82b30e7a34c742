package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelConfirmed(t *testing.T) {
	next, err := Cancel(StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, next)
}

func TestCancelCancelled(t *testing.T) {
	_, err := Cancel(StatusCancelled)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelCompleted(t *testing.T) {
	_, err := Cancel(StatusCompleted)
	assert.ErrorIs(t, err, ErrCancelCompleted)
}
