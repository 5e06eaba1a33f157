package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/survey-collect/cliparse"
	"github.com/danielhkuo/survey-collect/router"
	"github.com/danielhkuo/survey-collect/store"
)

func main() {
	// Load .env if present (env vars already set take precedence)
	_ = godotenv.Load()

	// Structured text logs on a terminal, JSON otherwise
	if isatty.IsTerminal(os.Stdout.Fd()) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// The response log is created lazily on first submission
	st := store.New(cfg.ResponsesPath())
	slog.Info("Response store ready", "path", st.Path())

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
