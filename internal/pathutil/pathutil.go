// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/worktime/internal/osutil"
)

const (
	EnvDataDir = "WORKTIME_DATA_DIR"
	EnvAppEnv  = "WORKTIME_ENV"
)

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dataFileName   string
	boltFileName   string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	dataFilePath   string
	boltFilePath   string
	logFilePath    string
}

// New resolves every application path from the process environment.
func New() (*Paths, error) {
	return resolve(os.Getenv, runtime.GOOS)
}

func resolve(getenv func(string) string, goos string) (*Paths, error) {
	p := &Paths{
		appDir:         "worktime",
		configFileName: "config.yml",
		dataFileName:   "worktime-data.txt",
		boltFileName:   "worktime.db",
		logFileName:    "worktime.log",
	}

	p.applyEnvironmentOverrides(getenv)

	p.dataDir = DataDir(getenv, goos)

	p.dataFilePath = filepath.Join(p.dataDir, p.appDir, p.dataFileName)
	p.boltFilePath = filepath.Join(p.dataDir, p.appDir, p.boltFileName)
	p.logFilePath = filepath.Join(p.dataDir, p.appDir, "log", p.logFileName)

	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return nil, fmt.Errorf("resolving config file path: %w", err)
	}

	return p, nil
}

// DataDir returns the per-user directory that holds the data file. The
// primary variable wins, then the platform variable, then the xdg data home
// with its per-OS default. The current directory is the last resort.
func DataDir(getenv func(string) string, goos string) string {
	secondary := "XDG_DATA_HOME"
	if goos == osutil.Windows {
		secondary = "APPDATA"
	}

	candidates := []string{
		getenv(EnvDataDir),
		getenv(secondary),
		xdg.DataHome,
	}

	for _, dir := range candidates {
		if dir = strings.TrimSpace(dir); dir != "" {
			return dir
		}
	}

	return "."
}

func (p *Paths) applyEnvironmentOverrides(getenv func(string) string) {
	appEnv := strings.TrimSpace(getenv(EnvAppEnv))
	if appEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", appEnv)
		p.dataFileName = fmt.Sprintf("worktime-data_%s.txt", appEnv)
		p.boltFileName = fmt.Sprintf("worktime_%s.db", appEnv)
		p.logFileName = fmt.Sprintf("worktime_%s.log", appEnv)
	}
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DataFilePath() string {
	return p.dataFilePath
}

func (p *Paths) BoltFilePath() string {
	return p.boltFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}
