// Package pidfile records the process ID of the running daemon so that the
// control commands know where to send their signals.
package pidfile

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/ayoisaiah/pomod/internal/apperr"
	"github.com/ayoisaiah/pomod/internal/osutil"
)

var (
	// ErrNotRunning is returned when no live daemon owns the pid file.
	ErrNotRunning = &apperr.Error{
		Message: "pomod is not running",
	}

	// ErrAlreadyRunning is returned when another live daemon owns the pid
	// file.
	ErrAlreadyRunning = &apperr.Error{
		Message: "pomod is already running with pid %d",
	}

	errCorrupt = &apperr.Error{
		Message: "pid file %s is corrupt",
	}
)

// Read returns the pid of the live daemon recorded at path.
func Read(path string) (int, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNotRunning
	}

	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || pid <= 0 {
		return 0, errCorrupt.Fmt(path)
	}

	if !Alive(pid) {
		return 0, ErrNotRunning
	}

	return pid, nil
}

// Write records the current process at path. A file left behind by a
// process that is no longer alive is replaced.
func Write(path string) error {
	pid, err := Read(path)
	if err == nil && pid != os.Getpid() {
		return ErrAlreadyRunning.Fmt(pid)
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return err
	}

	return os.WriteFile(
		path,
		[]byte(strconv.Itoa(os.Getpid())+"\n"),
		osutil.FilePermission,
	)
}

// Remove deletes the pid file if it belongs to the current process.
func Remove(path string) error {
	pid, err := Read(path)
	if err != nil || pid != os.Getpid() {
		return nil
	}

	return os.Remove(path)
}

// Alive reports whether a process with the given pid exists.
func Alive(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = p.Signal(syscall.Signal(0))

	return err == nil || errors.Is(err, syscall.EPERM)
}
