// Package main is the kensaku CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kensaku/internal/config"
	"github.com/hyperjump/kensaku/internal/engine"
	"github.com/hyperjump/kensaku/internal/models"
	"github.com/hyperjump/kensaku/internal/server"
	"github.com/hyperjump/kensaku/internal/template"
	"github.com/hyperjump/kensaku/pkg/utils"
)

var version = "1.0"

const (
	defaultConfigPath = "config.yaml"
	defaultServerURL  = "http://localhost:7777"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("kensaku version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig loads the config at path, falling back to built-in defaults
// when the file does not exist (a fresh deployment with no config.yaml yet).
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Warning: %s not found, using defaults\n", path)
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (backend request/response bodies)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", *configPath),
		zap.String("engine", cfg.Engine.Type),
		zap.String("backend", cfg.Engine.Endpoint()),
		zap.String("index", cfg.Engine.IndexName),
		zap.String("base_url", cfg.Engine.ReturnURL),
		zap.Int("search_count", cfg.Engine.SearchCount),
		zap.Int("snippet_length", cfg.Engine.SnippetLength),
		zap.Bool("debug", debugMode))

	store := template.NewStore(cfg.Engine.TemplatePath)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := store.Watch(watchCtx, logger); err != nil {
		logger.Warn("template watch disabled", zap.Error(err))
	}

	eng, err := engine.New(&cfg.Engine, store, logger)
	if err != nil {
		logger.Fatal("Failed to initialize engine", zap.Error(err))
	}

	srv := server.NewServer(eng, cfg, logger, version)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildSearchPayload builds the /search request body. The query goes through
// the queries list so multi-word phrases survive normalization intact.
func buildSearchPayload(queryStr string, count int) ([]byte, error) {
	payload := map[string]interface{}{
		"queries": []string{queryStr},
	}
	if count > 0 {
		payload["count"] = count
	}
	return json.Marshal(payload)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "gateway URL")
	count := fs.Int("count", 0, "number of results (0 = server default)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: kensaku search [flags] <query>")
		os.Exit(1)
	}
	queryStr := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if queryStr == "" {
		fmt.Println("Usage: kensaku search [flags] <query>")
		os.Exit(1)
	}

	body, err := buildSearchPayload(queryStr, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	resp, err := http.Post(*serverURL+"/search", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var out models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Fprintf(os.Stderr, "Decode response failed: %v\n", err)
		os.Exit(1)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("%d result(s) in %dms (engine: %s)\n", out.Total, out.TookMS, out.Engine)
		for i, r := range out.Results {
			fmt.Printf("%d. %s\n   %s\n   %s\n", i+1, r.Title, r.Link, r.Snippet)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "gateway URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var status struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Decode response failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("status:   %s\n", status.Status)
	fmt.Printf("service:  %s\n", status.Service)
	fmt.Printf("version:  %s\n", status.Version)
}

func printUsage() {
	fmt.Println(`kensaku - search gateway for Manticore-backed knowledge bases

Usage:
  kensaku server [flags]           Start the HTTP gateway
  kensaku search [flags] <query>   Search through a running gateway
  kensaku status [flags]           Show gateway status
  kensaku version                  Show version
  kensaku help                     Show this help

Server Flags:
  --config string    Config file path (default: config.yaml)
  --debug            Enable debug logging (backend request/response bodies)

Search Flags:
  --server string    Gateway URL (default: http://localhost:7777)
  --count int        Number of results (0 = server default)
  --output string    Output format: text or json (default: text)

Status Flags:
  --server string    Gateway URL (default: http://localhost:7777)

Examples:
  kensaku server
  kensaku search capital of France
  kensaku search --count 3 --output json "exact phrase search"
  kensaku status`)
}
