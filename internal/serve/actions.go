package serve

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"
)

// ServeAction runs the extraction/classification HTTP service.
func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	addr := c.String("addr")
	server := NewServer(logger)

	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
