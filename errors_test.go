package mpmcchan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendError_WrapsFull(t *testing.T) {
	ch := NewChannel[int](1)
	require.NoError(t, ch.TrySend(1))

	err := ch.TrySend(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFull)

	var sendErr *SendError[int]
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, 2, sendErr.Value)
}

func TestSendError_WrapsDisconnected(t *testing.T) {
	ch := NewChannel[int](1)
	ch.Close()

	err := ch.TrySend(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDisconnected)

	var sendErr *SendError[int]
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, 5, sendErr.Value)
}

func TestTryRecv_Empty(t *testing.T) {
	ch := NewChannel[int](1)
	_, err := ch.TryRecv()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestChannel_ObservationalSnapshots(t *testing.T) {
	ch := NewChannel[int](2)
	assert.True(t, ch.IsEmpty())
	assert.False(t, ch.IsFull())
	assert.False(t, ch.IsClosed())

	require.NoError(t, ch.TrySend(1))
	require.NoError(t, ch.TrySend(2))
	assert.False(t, ch.IsEmpty())
	assert.True(t, ch.IsFull())

	ch.Close()
	assert.True(t, ch.IsClosed())
}
