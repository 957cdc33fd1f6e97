package xdg

import (
	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

// DownloadDir returns the directory a host suggests for new downloads.
func (a *Adapter) DownloadDir() (string, error) {
	return config.GetDownloadDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
