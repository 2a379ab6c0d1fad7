package config

// Defaults for configuration values.
const (
	DefaultChecksFile = "checks.hcl"
	DefaultOutput     = "auto"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// ChecksFile is the path to the checks declaration file (.hcl, .yaml).
	ChecksFile string `koanf:"checks"`
	// DataFile is the path to the data to validate (.csv or a SQLite db).
	DataFile string `koanf:"data"`
	// DataTable names the table to load when DataFile is a SQLite db.
	DataTable string `koanf:"table"`
	// Concurrent runs checks across a worker pool.
	Concurrent bool `koanf:"concurrent"`
	// Workers bounds the worker pool; 0 means hardware parallelism.
	Workers int `koanf:"workers"`
	// Output is the output format (auto|text|json).
	Output string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
