package xdg

import (
	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/infrastructure/config"
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

func (a *Adapter) IconCacheDir() (string, error) {
	return config.GetIconCacheDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
