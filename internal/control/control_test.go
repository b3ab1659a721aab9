package control_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomod/internal/control"
)

func TestChanDeliversEvents(t *testing.T) {
	ch := make(chan control.Event, 2)
	ch <- control.Toggle
	ch <- control.Reset

	inbox := control.Chan(ch)

	for _, want := range []control.Event{control.Toggle, control.Reset} {
		got, ok, err := inbox.Wait(context.Background(), time.Second)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestChanTimeout(t *testing.T) {
	inbox := control.Chan(make(chan control.Event))

	start := time.Now()

	_, ok, err := inbox.Wait(context.Background(), 20*time.Millisecond)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestChanUnexpectedEvent(t *testing.T) {
	ch := make(chan control.Event, 1)
	ch <- control.Event(42)

	_, ok, err := control.Chan(ch).Wait(context.Background(), time.Second)

	assert.False(t, ok)
	assert.ErrorIs(t, err, control.ErrUnexpectedEvent)
	assert.Contains(t, err.Error(), "42")
}

func TestChanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := control.Chan(make(chan control.Event)).Wait(ctx, time.Minute)

	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "toggle", control.Toggle.String())
	assert.Equal(t, "reset", control.Reset.String())
	assert.Equal(t, "unknown", control.Event(0).String())
}
