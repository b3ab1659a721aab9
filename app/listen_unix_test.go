//go:build !windows

package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomod/internal/control"
	"github.com/ayoisaiah/pomod/internal/pidfile"
)

func TestListenReceivesToggleOnceStarted(t *testing.T) {
	pidPath := filepath.Join(t.TempDir(), "pomod.pid")

	inbox, err := listen(pidPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = inbox.Close()
		_ = pidfile.Remove(pidPath)
	})

	pid, err := pidfile.Read(pidPath)
	require.NoError(t, err)

	require.NoError(t, control.Send(pid, control.Toggle))

	e, ok, err := inbox.Wait(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, control.Toggle, e)
}
