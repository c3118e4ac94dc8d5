package hello

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
)

// Handler answers every connection with the same canned HTTP response.
// It does not parse the request.
type Handler struct {
	contentFile    string
	readBufferSize int
	readTimeout    time.Duration
}

func NewHandler(contentFile string, readBufferSize int, readTimeout time.Duration) *Handler {
	return &Handler{
		contentFile:    contentFile,
		readBufferSize: readBufferSize,
		readTimeout:    readTimeout,
	}
}

// Handle reads one chunk of the request, writes the response and closes conn.
func (h *Handler) Handle(conn net.Conn) error {
	defer conn.Close()

	// a silent client must not hold the worker past the deadline
	if err := conn.SetReadDeadline(time.Now().Add(h.readTimeout)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	buf := make([]byte, h.readBufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read request: %w", err)
	}

	contents, err := os.ReadFile(h.contentFile)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	response := fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Length: %d\r\n\r\n%s", len(contents), contents)
	if _, err := io.WriteString(conn, response); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	zap.S().Named("hello").Debugw("request served", "remote", conn.RemoteAddr().String(), "request", string(buf[:n]))
	return nil
}
