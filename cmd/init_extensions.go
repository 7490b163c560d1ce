/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command that needs a workspace runs. The workspace is opened once and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/config"
	"github.com/jpl-au/nexus/internal/log"
	"github.com/jpl-au/nexus/internal/workspace"
)

// noWorkspaceCommands lists commands that bypass workspace initialisation.
// Built from extensions implementing extension.Workspaceless.
var noWorkspaceCommands map[string]bool

func buildNoWorkspaceCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Workspaceless); ok {
			for _, name := range s.NoWorkspaceCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext   extension.Context
	extWorkspace *workspace.Service
	initOnce     sync.Once
	initErr      error
)

// initExtensions opens the workspace and injects it into extensions.
// sync.Once guarantees one workspace per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load(Dir())
		if err != nil {
			initErr = err
			return
		}

		ws, err := workspace.Open(Dir(), workspace.Options{
			MaxPath:    cfg.MaxPath(),
			MaxContent: cfg.MaxContent(),
		})
		if err != nil {
			initErr = err
			return
		}
		extWorkspace = ws

		log.SetProject(ws.Dir())

		extContext = extension.NewContext(ws, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext returns the shared extension context, or nil before the
// workspace has been opened.
func ExtContext() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noWorkspaceCommands = buildNoWorkspaceCommands()
	})
}
