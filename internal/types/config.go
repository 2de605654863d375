package types

type RunMode string

const (
	// ModeLocal is the mode for running the importer against a local feed file
	ModeLocal RunMode = "local"
	// ModeImporter is the mode for running the scheduled stock importer
	ModeImporter RunMode = "importer"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
