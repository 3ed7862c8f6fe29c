package signal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerSignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal()

	require.Error(t, h.Context().Err())
	assert.Equal(t, context.Canceled, h.Context().Err())
}

func TestHandlerSignalClosesInterruptedChannel(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal()

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed after signal")
	}
}

func TestHandlerMultipleSignalsProcessedOnce(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal()
	h.handleSignal()
	h.handleSignal()

	require.Error(t, h.Context().Err())
	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed")
	}
}

func TestHandlerStopCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()

	assert.Error(t, h.Context().Err())
}

func TestHandlerStopIsIdempotent(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err())
}

func TestHandlerWithoutSignalLeavesContextAlive(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.NoError(t, h.Context().Err())

	select {
	case <-h.Interrupted():
		t.Fatal("interrupted channel should stay open without a signal")
	default:
	}
}

func TestHandlerParentCancellationPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	<-h.Context().Done()
	assert.ErrorIs(t, h.Context().Err(), context.Canceled)
}
