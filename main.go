package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pollify/pollify/cliparse"
	"github.com/pollify/pollify/middleware"
	"github.com/pollify/pollify/router"
	"github.com/pollify/pollify/store"
)

func main() {
	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the poll store
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Poll store ready", "store", cfg.StoreType)

	// Create router
	mux := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
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

// openStore constructs the PollStore selected by configuration. The
// store is passed down explicitly; nothing else holds storage state.
func openStore(cfg cliparse.Config) (store.PollStore, error) {
	switch cfg.StoreType {
	case cliparse.StoreMemory:
		return store.NewMemoryStore(), nil
	case cliparse.StoreSQLite:
		return store.OpenSQL("sqlite", cfg.DatabaseURL)
	case cliparse.StorePostgres:
		return store.OpenSQL("postgres", cfg.DatabaseURL)
	case cliparse.StoreRedis:
		return store.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
}
