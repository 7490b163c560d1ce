// Package all imports all core nexus extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/nexus/extension/core"
	_ "github.com/jpl-au/nexus/extension/edit"
	_ "github.com/jpl-au/nexus/extension/read"
)
