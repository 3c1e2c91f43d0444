package config

import "time"

// Config is the main application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	AccessPassword string `mapstructure:"access_password"`
}

// AnalysisConfig points at the serverless analysis function. An empty
// endpoint disables remote analysis; the service then runs with a stub
// narrator.
type AnalysisConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

// Enabled reports whether a remote analysis endpoint is configured.
func (a AnalysisConfig) Enabled() bool {
	return a.Endpoint != ""
}

// Timeout returns the invocation timeout.
func (a AnalysisConfig) Timeout() time.Duration {
	if a.TimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
