package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Workflow configuration
	KeyDataFile    = "data_file"    // Demonstration file that is seeded, appended and printed
	KeyOutputLabel = "output_label" // Prefix for every printed line
	KeyInteractive = "interactive"  // Prompt for a search request when none is given

	// Logging configuration
	KeyLogLevel = "log_level"
	KeyVerbose  = "verbose"
)

// Default values for configuration keys
var Defaults = map[string]any{
	KeyDataFile:    "text-data/names.txt",
	KeyOutputLabel: "line-by-line:",
	KeyInteractive: false,
	KeyLogLevel:    "warn",
	KeyVerbose:     false,
}
