package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"robotgrid/internal/logging"
	"robotgrid/internal/serve"
)

var (
	addr    = flag.String("addr", "0.0.0.0:3000", "Address to listen on")
	verbose = flag.Bool("verbose", false, "Log every simulated step")
)

func main() {
	flag.Parse()

	logger := logging.NewLogger(os.Stderr, logging.Level(*verbose))
	defer logger.Sync()

	server := serve.NewServer(*addr, logger)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	if err := server.Shutdown(); err != nil {
		logger.Fatalw("shutdown error", "error", err)
	}
	logger.Info("done")
}
