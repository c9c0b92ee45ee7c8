package types

import "time"

// HTTPConfig holds shared HTTP settings used by the source clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "billquery/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CityConfig holds settings for the New York City Council (Legistar) source.
type CityConfig struct {
	// Token is the Legistar API token.
	Token string `json:"-" yaml:"-"`

	// AgendaFrom and AgendaTo bound MatterAgendaDate: AgendaFrom <= date < AgendaTo.
	AgendaFrom time.Time `json:"agenda_from" yaml:"agenda_from"`
	AgendaTo   time.Time `json:"agenda_to" yaml:"agenda_to"`
}

// StateConfig holds settings for the New York State Senate Open Legislation source.
type StateConfig struct {
	// Key is the Open Legislation API key.
	Key string `json:"-" yaml:"-"`

	// Years lists the session years searched for every keyword, in order.
	Years []string `json:"years" yaml:"years"`
}

// QueryConfig is the resolved configuration for one search run. It is built
// once at startup and passed to every stage.
type QueryConfig struct {
	HTTPConfig `yaml:",inline"`

	City  CityConfig  `json:"city" yaml:"city"`
	State StateConfig `json:"state" yaml:"state"`

	// Format selects text, csv, or table output.
	Format OutputFormat `json:"format" yaml:"format"`

	// Keywords are the search terms, in narration order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Ignore lists identifiers suppressed from every report.
	Ignore IgnoreSet `json:"-" yaml:"-"`

	// Verbose enables progress narration on the diagnostic stream.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
