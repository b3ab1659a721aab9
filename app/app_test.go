package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomod/internal/config"
	"github.com/ayoisaiah/pomod/internal/notify"
	"github.com/ayoisaiah/pomod/internal/pathutil"
	"github.com/ayoisaiah/pomod/internal/pidfile"
	"github.com/ayoisaiah/pomod/internal/status"
	"github.com/ayoisaiah/pomod/internal/ui"
)

func setDataHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	return dir
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	old := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = old
	})

	return &buf
}

func TestGet(t *testing.T) {
	a := Get()

	assert.Equal(t, "pomod", a.Name)
	assert.Equal(t, config.Version, a.Version)

	var names []string
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"toggle", "reset", "status"}, names)

	var flags []string
	for _, f := range a.Flags {
		flags = append(flags, f.Names()[0])
	}

	assert.Equal(t, []string{"config", "no-color", "disable-notification"}, flags)
}

func TestPrintStatus(t *testing.T) {
	ui.NoColor = true

	t.Cleanup(func() {
		ui.NoColor = false
	})

	updated := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		status   status.Status
		elapsed  time.Duration
		expected string
	}{
		{
			name: "running work",
			status: status.Status{
				State:            "work",
				Glyph:            "W",
				RemainingSeconds: 754,
				BreakCounter:     1,
				Running:          true,
			},
			elapsed:  4 * time.Second,
			expected: "W [pomodoro] 12:30 1/4\n",
		},
		{
			name: "paused short break",
			status: status.Status{
				State:            "short_break",
				Glyph:            "S",
				RemainingSeconds: 300,
				BreakCounter:     2,
			},
			elapsed:  time.Hour,
			expected: "S [short break] 05:00 2/4 (paused)\n",
		},
		{
			name: "not started",
			status: status.Status{
				State:            "uninitialized",
				Glyph:            "U",
				RemainingSeconds: 1500,
			},
			expected: "U [not started] 25:00 (paused)\n",
		},
		{
			name: "stale running status",
			status: status.Status{
				State:            "long_break",
				Glyph:            "L",
				RemainingSeconds: 2,
				Running:          true,
			},
			elapsed:  10 * time.Second,
			expected: "L [long break] 00:00 0/4\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			s := tc.status
			s.UpdatedAt = updated

			err := printStatus(&buf, &s, updated.Add(tc.elapsed))
			require.NoError(t, err)

			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestPrintStatusUnknownPhase(t *testing.T) {
	var buf bytes.Buffer

	err := printStatus(&buf, &status.Status{State: "coffee"}, time.Now())

	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestSignalActionNotRunning(t *testing.T) {
	setDataHome(t)

	for _, cmd := range []string{"toggle", "reset"} {
		t.Run(cmd, func(t *testing.T) {
			err := Get().Run([]string{"pomod", cmd})

			assert.ErrorIs(t, err, pidfile.ErrNotRunning)
		})
	}
}

func TestStatusActionNotRunning(t *testing.T) {
	setDataHome(t)

	out := captureStdout(t)

	require.NoError(t, Get().Run([]string{"pomod", "status"}))
	assert.Empty(t, out.String())
}

func TestStatusActionJSON(t *testing.T) {
	setDataHome(t)

	out := captureStdout(t)

	paths, err := pathutil.New()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(paths.PIDFilePath()), 0o755))
	require.NoError(t, pidfile.Write(paths.PIDFilePath()))

	t.Cleanup(func() {
		_ = pidfile.Remove(paths.PIDFilePath())
	})

	s := status.Status{
		UpdatedAt:        time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		State:            "work",
		Glyph:            "W",
		RemainingSeconds: 60,
		Running:          true,
	}

	require.NoError(t, status.WriteFile(paths.StatusFilePath(), s))

	require.NoError(t, Get().Run([]string{"pomod", "status", "--json"}))

	got, err := status.ReadFile(paths.StatusFilePath())
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"updated_at":"2024-01-01T09:00:00Z","state":"work","glyph":"W","remaining_seconds":60,"break_counter":0,"running":true}`,
		out.String(),
	)
	assert.Equal(t, s, *got)
}

func TestNewNotifier(t *testing.T) {
	setDataHome(t)

	paths, err := pathutil.New()
	require.NoError(t, err)

	cfg, err := config.New()
	require.NoError(t, err)

	n, err := newNotifier(cfg, paths, nil)
	require.NoError(t, err)
	assert.IsType(t, &notify.Desktop{}, n)

	cfg.Notifications.Enabled = false

	n, err = newNotifier(cfg, paths, nil)
	require.NoError(t, err)
	assert.IsType(t, notify.Func(nil), n)

	cfg.Notifications.Enabled = true
	cfg.Notifications.Sound = filepath.Join(t.TempDir(), "missing.mp3")

	_, err = newNotifier(cfg, paths, nil)
	assert.Error(t, err)
}
