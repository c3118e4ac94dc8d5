package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Hello

type Configuration struct {
	Server    Server `debugmap:"visible" mapstructure:"server" yaml:"server"`
	Pool      Pool   `debugmap:"visible" mapstructure:"pool" yaml:"pool"`
	Hello     Hello  `debugmap:"visible" mapstructure:"hello" yaml:"hello"`
	LogFormat string `debugmap:"visible" mapstructure:"log-format" yaml:"log-format" default:"console"`
	LogLevel  string `debugmap:"visible" mapstructure:"log-level" yaml:"log-level" default:"info"`
}

type Server struct {
	ServerMode string `debugmap:"visible" mapstructure:"mode" yaml:"mode" default:"dev"`
	HTTPPort   int    `debugmap:"visible" mapstructure:"http-port" yaml:"http-port" default:"8000"`
}

type Pool struct {
	NumWorkers int `debugmap:"visible" mapstructure:"workers" yaml:"workers" default:"4"`
}

type Hello struct {
	Address        string        `debugmap:"visible" mapstructure:"address" yaml:"address" default:"127.0.0.1:7878"`
	ContentFile    string        `debugmap:"visible" mapstructure:"content-file" yaml:"content-file" default:"hello.html"`
	ReadBufferSize int           `debugmap:"visible" mapstructure:"read-buffer-size" yaml:"read-buffer-size" default:"1024"`
	ReadTimeout    time.Duration `debugmap:"visible" mapstructure:"read-timeout" yaml:"read-timeout" default:"5s"`
}

const (
	ServerModeProd = "prod"
	ServerModeDev  = "dev"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

func (c *Configuration) Validate() error {
	if c.Pool.NumWorkers < 1 {
		return fmt.Errorf("pool.workers must be at least 1, got %d", c.Pool.NumWorkers)
	}

	switch c.Server.ServerMode {
	case ServerModeProd, ServerModeDev:
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeProd, ServerModeDev)
	}

	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http-port out of range: %d", c.Server.HTTPPort)
	}

	if c.Hello.Address == "" {
		return fmt.Errorf("hello.address is empty")
	}
	if c.Hello.ReadBufferSize < 1 {
		return fmt.Errorf("hello.read-buffer-size must be at least 1, got %d", c.Hello.ReadBufferSize)
	}
	if c.Hello.ReadTimeout <= 0 {
		return fmt.Errorf("hello.read-timeout must be positive, got %s", c.Hello.ReadTimeout)
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
