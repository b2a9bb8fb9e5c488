package config

const (
	// DefaultGoBin is the default test runner binary
	DefaultGoBin = "go"
	// DefaultProcessors is the default number of extraction workers
	DefaultProcessors = 4

	// EnvGoBin overrides the test runner binary
	EnvGoBin = "GTF_GO_BIN"
	// EnvSkipDirs holds comma-separated extra directories to skip when scanning
	EnvSkipDirs = "GTF_SKIP_DIRS"
)

// DefaultSkipDirs are the default directories to ignore when scanning for tests
var DefaultSkipDirs = []string{
	"vendor",
	"node_modules",
	"testdata",
}
