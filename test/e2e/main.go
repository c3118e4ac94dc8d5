package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type configuration struct {
	HelloAddress string
	AdminURL     string
	ContentFile  string
	Workers      int
	Connections  int
}

var cfg configuration

func (c configuration) Validate() error {
	if _, _, err := net.SplitHostPort(c.HelloAddress); err != nil {
		return fmt.Errorf("failed to parse hello address: %v", err)
	}
	if _, err := url.Parse(c.AdminURL); err != nil {
		return fmt.Errorf("failed to parse admin url: %v", err)
	}
	if c.ContentFile == "" {
		return errors.New("content file is empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be at least 1", c.Workers)
	}
	return nil
}

func main() {
	flag.StringVar(&cfg.HelloAddress, "hello-address", "127.0.0.1:7878", "Address of the hello listener under test")
	flag.StringVar(&cfg.AdminURL, "admin-url", "http://127.0.0.1:8000", "Base url of the admin API under test")
	flag.StringVar(&cfg.ContentFile, "content-file", "hello.html", "Content file the server under test was started with")
	flag.IntVar(&cfg.Workers, "workers", 4, "Worker count the server under test was started with")
	flag.IntVar(&cfg.Connections, "connections", 50, "Concurrent connections opened by the concurrency test")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "E2E Suite") {
		os.Exit(1)
	}
}
