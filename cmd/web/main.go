package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wavesurvivor/internal/config"
	loopconfig "github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/loop/server"
	"github.com/tomz197/wavesurvivor/internal/stream"
)

const (
	defaultHost   = "0.0.0.0"
	defaultPort   = "8080"
	shutdownGrace = 5 * time.Second
)

//go:embed index.html
var htmlPage string

func main() {
	envErr := config.LoadDotEnv()
	logger, err := config.NewLogger(os.Stderr, "web")
	if err != nil {
		logger.Warn("using default log level", "err", err)
	}
	if envErr != nil {
		logger.Warn("failed to load .env", "err", envErr)
	}
	if err := run(logger); err != nil {
		logger.Error("web server failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	width, err := config.GetEnvInt("FIELD_WIDTH", loopconfig.FieldWidth)
	if err != nil {
		logger.Warn("invalid FIELD_WIDTH, using default", "err", err)
	}
	height, err := config.GetEnvInt("FIELD_HEIGHT", loopconfig.FieldHeight)
	if err != nil {
		logger.Warn("invalid FIELD_HEIGHT, using default", "err", err)
	}

	hub := server.NewHub(logger.WithPrefix("hub"))
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.Handle("/ws", stream.NewHandler(hub, logger.WithPrefix("stream"),
		match.WithField(float64(width), float64(height))))

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("starting web server", "addr", "http://"+addr, "field", fmt.Sprintf("%dx%d", width, height))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-done:
	}
	logger.Info("shutting down server")

	// Websockets are hijacked, so http.Server.Shutdown does not wait for them.
	if remaining := hub.Shutdown(shutdownGrace); remaining > 0 {
		logger.Warn("streams still open at shutdown", "count", remaining)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
