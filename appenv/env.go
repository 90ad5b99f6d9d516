// Package appenv describes the identity and transport settings a host hands to
// a plugin process.
package appenv

import (
	"strings"

	"github.com/louisbranch/capbridge/internal/platform/config"
)

// Prefix is prepended to every variable name read by Load.
const Prefix = "CAPBRIDGE_APP_"

// Env is the process-wide environment descriptor. The runtime reads the
// socket path from it and every bridge answers health checks with its name
// and version.
type Env struct {
	// Dir is the plugin's installation directory.
	Dir string `env:"DIR"`
	// SockPath is the unix socket the runtime binds. Required.
	SockPath string `env:"SOCK"`
	// ID is the host-assigned instance id.
	ID string `env:"ID"`
	// Name is the display name reported by health checks.
	Name string `env:"NAME"`
	// Version is the semantic version reported by health checks.
	Version string `env:"VERSION"`
	// DataDir is a writable directory for plugin state.
	DataDir string `env:"DATA"`
}

// Load reads CAPBRIDGE_APP_* variables into an Env. Missing variables are
// left empty; New in package app rejects an empty SockPath.
func Load() (Env, error) {
	var env Env
	if err := config.ParseEnvWithPrefix(&env, Prefix); err != nil {
		return Env{}, err
	}
	env.SockPath = strings.TrimSpace(env.SockPath)
	return env, nil
}

// DisplayName returns Name, falling back to ID and then to "app".
func (e Env) DisplayName() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	if id := strings.TrimSpace(e.ID); id != "" {
		return id
	}
	return "app"
}
