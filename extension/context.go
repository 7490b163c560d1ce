// context.go defines the Context interface for extension access to nexus
// internals.
//
// Extensions receive Context during Init(), not at construction, because
// they register before the workspace is opened.

package extension

import (
	"github.com/jpl-au/nexus/internal/config"
	"github.com/jpl-au/nexus/internal/workspace"
)

// Context provides extensions controlled access to nexus internals.
type Context interface {
	// Workspace returns the sandboxed file service for the workspace root.
	Workspace() *workspace.Service

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	ws  *workspace.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(ws *workspace.Service, cfg *config.Config) Context {
	return &extContext{ws: ws, cfg: cfg}
}

// Workspace returns the workspace service.
func (c *extContext) Workspace() *workspace.Service {
	return c.ws
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
