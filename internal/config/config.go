package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat         string        `mapstructure:"log_format" yaml:"log_format"`
	RoomCapacity      int           `mapstructure:"room_capacity" yaml:"room_capacity"`
	DefaultRoom       string        `mapstructure:"default_room" yaml:"default_room"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	MetricsEnabled    bool          `mapstructure:"metrics_enabled" yaml:"metrics_enabled"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":5000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		LogFormat:         "console",
		RoomCapacity:      200,
		DefaultRoom:       "main",
		MaxBodyBytes:      64 << 10,
		MetricsEnabled:    true,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
// MetricsEnabled is not merged since false is indistinguishable from unset.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if other.RoomCapacity != 0 {
		c.RoomCapacity = other.RoomCapacity
	}
	if other.DefaultRoom != "" {
		c.DefaultRoom = other.DefaultRoom
	}
	if other.MaxBodyBytes != 0 {
		c.MaxBodyBytes = other.MaxBodyBytes
	}
}
