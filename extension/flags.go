// flags.go defines constants for CLI flag names.
//
// Constants instead of string literals catch typos at compile time when a
// flag name is used both in Flags().Type() definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

const (
	// Boolean flags

	FlagDryRun     = "dry-run"     // Preview without making changes
	FlagIgnoreCase = "ignore-case" // Case-insensitive matching
	FlagLocal      = "local"       // Use workspace-local config
	FlagRegex      = "regex"       // Request regex matching (rejected)

	// String flags

	FlagFile  = "file"  // Edit list file (YAML or JSON)
	FlagLines = "lines" // Line range (e.g., "10:20")
)
