// Package config defines the global configuration structure for the evapcook
// service. Configuration is loaded once at process initialization and is
// immutable thereafter, following 12-Factor principles: OS environment takes
// priority over a local .env file, and every model constant the estimators
// use is injectable here rather than hard-coded at the call sites.
//
// Any missing required value or invalid format causes startup to fail fast.
package config

// Config is the top-level configuration struct. It is populated once during
// process initialization and never modified. Sub-components receive only the
// specific subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"evapcook-api"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Domain Configurations
	Server    ServerConfig
	Security  SecurityConfig
	Estimator EstimatorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// SecurityConfig holds CORS settings for the API shell.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// EstimatorConfig holds the tunable constants of both estimation strategies
// and the default model selection. Defaults reproduce the calibration the
// models were derived with; overrides change tuning, never semantics.
type EstimatorConfig struct {
	// DefaultModel selects the strategy used when a request names none.
	DefaultModel string `envconfig:"ESTIMATOR_DEFAULT_MODEL" default:"single_rate" validate:"oneof=single_rate dual_bound"`

	// Single-rate model constants.
	BaseRate        float64 `envconfig:"ESTIMATOR_BASE_RATE" default:"0.02" validate:"gt=0"`
	HeatingFraction float64 `envconfig:"ESTIMATOR_HEATING_FRACTION" default:"0.40" validate:"gt=0,lte=1"`
	MinutesPerLiter float64 `envconfig:"ESTIMATOR_MINUTES_PER_LITER" default:"7.5" validate:"gt=0"`

	// Dual-bound model constants.
	SpecificHeatJPerGC float64 `envconfig:"ESTIMATOR_SPECIFIC_HEAT" default:"4.186" validate:"gt=0"`
	LatentHeatJPerG    float64 `envconfig:"ESTIMATOR_LATENT_HEAT" default:"2260" validate:"gt=0"`
	InitialTempC       float64 `envconfig:"ESTIMATOR_INITIAL_TEMP" default:"25"`
	HeaterPowerW       float64 `envconfig:"ESTIMATOR_HEATER_POWER" default:"1500" validate:"gt=0"`
	HeaterEfficiency   float64 `envconfig:"ESTIMATOR_HEATER_EFFICIENCY" default:"0.45" validate:"gt=0,lte=1"`
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
