// File path: cmd/prepwell/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dkoushik/prepwell/internal/api"
	"github.com/dkoushik/prepwell/internal/common"
	"github.com/dkoushik/prepwell/internal/genai"
	"github.com/dkoushik/prepwell/internal/question"
	"github.com/dkoushik/prepwell/internal/recommend"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug("prepwell: .env file not loaded", "error", err)
	} else {
		logger.Info("prepwell: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the SQLite question corpus")
	seed := flag.Bool("seed", true, "seed the starter corpus when the store is empty")
	flag.Parse()

	logger.Info("prepwell: startup initiated", "addr", *addr, "db", *dbPath)

	if dir := filepath.Dir(*dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("prepwell: cannot create data dir", "dir", dir, "error", err)
			fmt.Println("data dir error:", err)
			os.Exit(1)
		}
	}

	store, err := question.Open(*dbPath)
	if err != nil {
		logger.Error("prepwell: corpus store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if *seed {
		if err := store.SeedIfEmpty(ctx); err != nil {
			logger.Error("prepwell: corpus seeding failed", "error", err)
			fmt.Println("seed error:", err)
			os.Exit(1)
		}
	}

	aiCfg := genai.LoadConfig()
	generator := genai.New(aiCfg)
	if aiCfg.Active() {
		logger.Info("prepwell: question generation enabled",
			"model", aiCfg.Model, "timeout", aiCfg.Timeout, "cache_ttl", aiCfg.CacheTTL)
	} else {
		logger.Warn("prepwell: question generation disabled; corpus shortfalls return fewer results")
	}

	var recOpts []recommend.Option
	if v := strings.TrimSpace(os.Getenv("PREPWELL_DEFAULT_COUNT")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			recOpts = append(recOpts, recommend.WithDefaultTarget(parsed))
		} else {
			logger.Warn("prepwell: invalid PREPWELL_DEFAULT_COUNT", "value", v)
		}
	}
	recommender := recommend.New(store, generator, recOpts...)

	server, err := api.NewServer(store, recommender)
	if err != nil {
		logger.Error("prepwell: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("prepwell: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("prepwell: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDBPath() string {
	return filepath.Join("data", "corpus.db")
}
