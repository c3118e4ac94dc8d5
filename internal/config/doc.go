// Package config defines the configuration structure for hello-pool.
//
// Configuration is organized into logical sections (Server, Pool, Hello)
// and uses code generation via optgen to create functional option helpers.
// Defaults come from `default` struct tags applied by creasty/defaults.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - Admin HTTP server settings
//	├── Pool           - Worker pool sizing
//	├── Hello          - Hello TCP listener settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ Admin API listen port                  │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ NumWorkers       │ 4       │ Number of pool workers (>= 1)          │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Hello Configuration
//
//	┌──────────────────┬──────────────────┬───────────────────────────────┐
//	│ Field            │ Default          │ Description                   │
//	├──────────────────┼──────────────────┼───────────────────────────────┤
//	│ Address          │ "127.0.0.1:7878" │ TCP listen address            │
//	│ ContentFile      │ "hello.html"     │ File served as response body  │
//	│ ReadBufferSize   │ 1024             │ Request bytes read per conn   │
//	│ ReadTimeout      │ 5s               │ Deadline for the request read │
//	└──────────────────┴──────────────────┴───────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Hello
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption)
//   - WithServer(Server), WithPool(Pool), WithHello(Hello), ...
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(config.Pool{NumWorkers: 8}),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
package config
