package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/hello-pool/api/v1"
)

func hello() (string, error) {
	conn, err := net.DialTimeout("tcp", cfg.HelloAddress, 5*time.Second)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("GET / HTTP/1.1\r\nHost: e2e\r\n\r\n")); err != nil {
		return "", err
	}
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	body, err := io.ReadAll(conn)
	return string(body), err
}

func poolStatus() (v1.PoolStatus, error) {
	var status v1.PoolStatus
	resp, err := http.Get(cfg.AdminURL + "/api/v1/pool")
	if err != nil {
		return status, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status, fmt.Errorf("unexpected status %s", resp.Status)
	}
	err = json.NewDecoder(resp.Body).Decode(&status)
	return status, err
}

var _ = Describe("hello-pool", Ordered, func() {
	var expected string

	BeforeAll(func() {
		contents, err := os.ReadFile(cfg.ContentFile)
		Expect(err).NotTo(HaveOccurred())
		expected = fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Length: %d\r\n\r\n%s", len(contents), contents)
	})

	It("should report a running pool with the configured size", func() {
		status, err := poolStatus()
		Expect(err).NotTo(HaveOccurred())

		zap.S().Infow("pool status", "status", status)
		Expect(status.State).To(Equal(v1.PoolStatusStateRunning))
		Expect(status.Workers).To(Equal(cfg.Workers))
	})

	It("should answer a single connection", func() {
		body, err := hello()
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(Equal(expected))
	})

	It("should answer concurrent connections and count every job", func() {
		before, err := poolStatus()
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		bodies := make(chan string, cfg.Connections)
		for range cfg.Connections {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				body, err := hello()
				Expect(err).NotTo(HaveOccurred())
				bodies <- body
			}()
		}
		wg.Wait()
		close(bodies)

		for body := range bodies {
			Expect(body).To(Equal(expected))
		}

		Eventually(func() uint64 {
			status, err := poolStatus()
			if err != nil {
				return 0
			}
			return status.Completed
		}, 10*time.Second, 100*time.Millisecond).Should(BeNumerically(">=", before.Completed+uint64(cfg.Connections)))
	})
})
