package config

// Server defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
)

// Persistence backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Persistence defaults
const (
	DefaultStoreBackend = StoreBackendFile
	DefaultDataDir      = "data"
	DefaultDBName       = "trader"
)

// Shop economy defaults. The drift range and cadence are scene-level
// configuration, not engine invariants; the two observed tunings in the
// field are 0.15 and 0.20.
const (
	DefaultDriftRange           = 0.15
	DefaultDriftIntervalSeconds = 45
	DefaultStartingMoney        = 1000
)
