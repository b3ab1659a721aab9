// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envName = "POMOD_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	statusFileName string
	pidFileName    string
	logFileName    string
	iconFileName   string

	// Computed absolute paths
	configFilePath string
	statusFilePath string
	pidFilePath    string
	logFilePath    string
}

// New resolves the application paths against the XDG base directories.
// Setting POMOD_ENV keeps the files of separate environments apart.
func New() (*Paths, error) {
	p := &Paths{
		configDir:      "pomod",
		configFileName: "config.yml",
		statusFileName: "status.json",
		pidFileName:    "pomod.pid",
		logFileName:    "pomod.log",
		iconFileName:   "icon.png",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) StatusFilePath() string {
	return p.statusFilePath
}

func (p *Paths) PIDFilePath() string {
	return p.pidFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

// IconFilePath searches the XDG data directories for the notification icon.
// It returns an empty string if none is installed.
func (p *Paths) IconFilePath() string {
	path, err := xdg.SearchDataFile(filepath.Join(p.configDir, p.iconFileName))
	if err != nil {
		return ""
	}

	return path
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.pidFileName = fmt.Sprintf("pomod_%s.pid", env)
		p.logFileName = fmt.Sprintf("pomod_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.pidFilePath = filepath.Join(dataDir, p.pidFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
