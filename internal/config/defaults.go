package config

import "time"

const (
	// DefaultHeader is the header included at the top of the generated catalog
	DefaultHeader = "tests.h"
	// DefaultLogLevel is the default zap log level
	DefaultLogLevel = "warn"
	// DefaultSnapshotFormat is the default catalog snapshot format
	DefaultSnapshotFormat = FormatJSON
	// DefaultOutputDir is where snapshots go when no output path is given
	DefaultOutputDir = "."
	// DefaultSnapshotName is the snapshot file name without extension
	DefaultSnapshotName = "catalog"
	// DefaultDebounce is how long watch waits for changes to settle
	DefaultDebounce = 300 * time.Millisecond

	// DefaultConfigFile is the optional YAML config file looked up in the working directory
	DefaultConfigFile = ".tcgen.yaml"
	// DefaultEnvFile is the optional dotenv file looked up in the working directory
	DefaultEnvFile = ".env"
)

// Snapshot formats
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Environment variables
const (
	EnvConfigFile     = "TCGEN_CONFIG"
	EnvHeader         = "TCGEN_HEADER"
	EnvLogLevel       = "TCGEN_LOG_LEVEL"
	EnvExtensions     = "TCGEN_EXTENSIONS"
	EnvProgress       = "TCGEN_PROGRESS"
	EnvDebounce       = "TCGEN_DEBOUNCE"
	EnvSnapshotFormat = "TCGEN_SNAPSHOT_FORMAT"
)

// DefaultExtensions are the source file extensions picked up when a directory is scanned
var DefaultExtensions = []string{".c"}

// DefaultPathsToIgnore are the default directories to skip when scanning directories
var DefaultPathsToIgnore = []string{
	"build",
	"vendor",
	"node_modules",
}
