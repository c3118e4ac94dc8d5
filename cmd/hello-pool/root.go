package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubev2v/hello-pool/internal/config"
)

const envPrefix = "HELLO_POOL"

// flag name -> configuration key
var configKeys = map[string]string{
	"log-level":        "log-level",
	"log-format":       "log-format",
	"workers":          "pool.workers",
	"http-port":        "server.http-port",
	"server-mode":      "server.mode",
	"address":          "hello.address",
	"content-file":     "hello.content-file",
	"read-buffer-size": "hello.read-buffer-size",
	"read-timeout":     "hello.read-timeout",
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hello-pool",
		Short:             "Serve a static hello page through a fixed-size worker pool",
		PersistentPreRunE: cobrautil.SyncViperPreRunE(envPrefix),
		SilenceUsage:      true,
	}

	registerConfigFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newServeCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return cmd
}

func registerConfigFlags(fs *pflag.FlagSet) {
	d := config.NewConfigurationWithOptionsAndDefaults()

	fs.String("config", "", "Path to a YAML configuration file")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-format", d.LogFormat, "Log format (console or json)")
	fs.Int("workers", d.Pool.NumWorkers, "Number of pool workers")
	fs.Int("http-port", d.Server.HTTPPort, "Admin API listen port")
	fs.String("server-mode", d.Server.ServerMode, "Admin server mode (dev or prod)")
	fs.String("address", d.Hello.Address, "Hello listener address")
	fs.String("content-file", d.Hello.ContentFile, "File served as the hello response body")
	fs.Int("read-buffer-size", d.Hello.ReadBufferSize, "Request bytes read per connection")
	fs.Duration("read-timeout", d.Hello.ReadTimeout, "Time a connection is given to send its request")
}

// loadConfiguration merges defaults, the optional config file and flags, in
// increasing order of precedence. Environment variables reach the flags
// through cobrautil.SyncViperPreRunE.
func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	v := viper.New()
	fs := cmd.Flags()

	for name, key := range configKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate configuration: %w", err)
	}
	return cfg, nil
}
