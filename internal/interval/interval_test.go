package interval_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomod/internal/interval"
)

func TestDuration(t *testing.T) {
	testCases := []struct {
		State interval.State
		Want  time.Duration
	}{
		{interval.Uninitialized, 25 * time.Minute},
		{interval.Work, 25 * time.Minute},
		{interval.ShortBreak, 5 * time.Minute},
		{interval.LongBreak, 30 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.State.String(), func(t *testing.T) {
			assert.Equal(t, tc.Want, tc.State.Duration())
		})
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := make(map[string]interval.State)

	for _, s := range interval.States {
		g := s.Glyph()

		if prev, ok := seen[g]; ok {
			t.Fatalf("%s and %s share glyph %q", prev, s, g)
		}

		seen[g] = s
	}
}

func TestNextSequence(t *testing.T) {
	state := interval.Uninitialized
	counter := 0

	var got []interval.State

	for range 16 {
		state = state.Next(&counter)
		got = append(got, state)
	}

	cycle := []interval.State{
		interval.Work, interval.ShortBreak,
		interval.Work, interval.ShortBreak,
		interval.Work, interval.ShortBreak,
		interval.Work, interval.LongBreak,
	}

	want := append(append([]interval.State{}, cycle...), cycle...)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("phase sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestNextCounter(t *testing.T) {
	testCases := []struct {
		Name        string
		From        interval.State
		Counter     int
		Want        interval.State
		WantCounter int
	}{
		{
			Name:        "uninitialized leaves counter untouched",
			From:        interval.Uninitialized,
			Counter:     2,
			Want:        interval.Work,
			WantCounter: 2,
		},
		{
			Name:        "first work interval gets a short break",
			From:        interval.Work,
			Counter:     0,
			Want:        interval.ShortBreak,
			WantCounter: 1,
		},
		{
			Name:        "third work interval still gets a short break",
			From:        interval.Work,
			Counter:     2,
			Want:        interval.ShortBreak,
			WantCounter: 3,
		},
		{
			Name:        "last work interval of the cycle gets a long break",
			From:        interval.Work,
			Counter:     3,
			Want:        interval.LongBreak,
			WantCounter: 0,
		},
		{
			Name:        "short break returns to work",
			From:        interval.ShortBreak,
			Counter:     1,
			Want:        interval.Work,
			WantCounter: 1,
		},
		{
			Name:        "long break returns to work",
			From:        interval.LongBreak,
			Counter:     0,
			Want:        interval.Work,
			WantCounter: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			counter := tc.Counter

			got := tc.From.Next(&counter)

			assert.Equal(t, tc.Want, got)
			assert.Equal(t, tc.WantCounter, counter)
		})
	}
}

func TestNextNeverStays(t *testing.T) {
	for _, s := range interval.States {
		for c := range interval.CycleLength {
			counter := c

			next := s.Next(&counter)

			assert.NotEqual(t, s, next)
			assert.NotEqual(t, interval.Uninitialized, next)
			assert.GreaterOrEqual(t, counter, 0)
			assert.Less(t, counter, interval.CycleLength)
		}
	}
}

func TestParse(t *testing.T) {
	for _, s := range interval.States {
		got, err := interval.Parse(s.String())

		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := interval.Parse("lunch")
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "pomodoro", interval.Work.Name())
	assert.Equal(t, "short break", interval.ShortBreak.Name())
	assert.Equal(t, "long break", interval.LongBreak.Name())
	assert.Empty(t, interval.Uninitialized.Name())
}
