package types

import "errors"

// Supported store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds backend selection and loan policy for a librarian run.
type Config struct {
	Backend         string  `json:"backend" yaml:"backend"`
	DataDir         string  `json:"data_dir" yaml:"data_dir"`
	PenaltyPerDay   float64 `json:"penalty_per_day" yaml:"penalty_per_day"`
	DefaultLoanDays int     `json:"default_loan_days" yaml:"default_loan_days"`
}

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrPenaltyRate    = errors.New("penalty rate must not be negative")
	ErrLoanDays       = errors.New("default loan days out of range")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// DefaultConfig returns the configuration used when no config file
// overrides anything: JSON store, 1 currency unit per overdue day,
// 14-day loans.
func DefaultConfig() Config {
	return Config{
		Backend:         BackendJSON,
		PenaltyPerDay:   1,
		DefaultLoanDays: 14,
	}
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.PenaltyPerDay < 0 {
		return ErrPenaltyRate
	}
	if c.DefaultLoanDays < MinLoanDays || c.DefaultLoanDays > MaxLoanDays {
		return ErrLoanDays
	}
	return nil
}
