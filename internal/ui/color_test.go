package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomod/internal/interval"
)

func TestPhaseStyle(t *testing.T) {
	testCases := []struct {
		state interval.State
		color string
	}{
		{interval.Work, string(ColorWork)},
		{interval.ShortBreak, string(ColorShortBreak)},
		{interval.LongBreak, string(ColorLongBreak)},
		{interval.Uninitialized, string(ColorDim)},
	}

	for _, tc := range testCases {
		t.Run(tc.state.String(), func(t *testing.T) {
			fg, ok := PhaseStyle(tc.state).GetForeground().(lipgloss.Color)
			assert.True(t, ok)
			assert.Equal(t, tc.color, string(fg))
		})
	}
}

func TestRenderNoColor(t *testing.T) {
	NoColor = true

	t.Cleanup(func() {
		NoColor = false
	})

	assert.Equal(t, "work", Render(StyleWork, "work"))
	assert.Equal(t, "paused", Dim("paused"))
}
