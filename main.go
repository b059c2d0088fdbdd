/* main.go
 * Startup wiring for the bracket synchronization engine. Runs the engine and the
 * periodic refresher, issues the initial bracket load and logs responses. The terminal
 * renderer attaches to the same engine through Snapshot and the response channel.
 * Usage: go run main.go -config="<path>" [-once]
 */

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mmtui/api/engine"
	"mmtui/api/external"
	"mmtui/config"
	"mmtui/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; env vars may come from the shell.
	_ = godotenv.Load()

	configPtr := flag.String("config", "mmtui.yaml", "Path to YAML config file")
	oncePtr := flag.Bool("once", false, "Load the bracket once and exit (no periodic refresh)")
	verbosePtr := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbosePtr {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPtr)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	client := external.NewClient(cfg.Providers.Timeout)
	if cfg.Providers.NCAABaseURL != "" {
		client.NCAABaseURL = cfg.Providers.NCAABaseURL
	}
	if cfg.Providers.ESPNSiteURL != "" {
		client.ESPNSiteURL = cfg.Providers.ESPNSiteURL
	}
	if cfg.Providers.ESPNV2URL != "" {
		client.ESPNV2URL = cfg.Providers.ESPNV2URL
	}

	sources := engine.DefaultSources(client, cfg.BracketOverridePath, time.Now())
	eng := engine.New(sources, client, cfg.Providers.Timeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go eng.Run(ctx)
	if !*oncePtr {
		go scheduler.New(eng, cfg.Refresh.Interval).Run(ctx)
	}

	eng.Submit(engine.LoadBracket{})

	for {
		select {
		case <-ctx.Done():
			return
		case response := <-eng.Responses():
			switch r := response.(type) {
			case engine.BracketLoaded:
				slog.Info("bracket ready",
					"name", r.Tournament.Name, "year", r.Tournament.Year,
					"regions", len(r.Tournament.Regions), "games", r.Tournament.GameCount())
				if *oncePtr {
					return
				}
			case engine.LoadFailed:
				slog.Error("bracket load failed", "err", r.Err)
				if *oncePtr {
					os.Exit(1)
				}
			case engine.ScoresRefreshed:
				if r.SoftError != "" {
					slog.Warn("refresh skipped", "reason", r.SoftError)
					continue
				}
				slog.Info("scores refreshed", "bridged", r.Bridged, "changed", len(r.Changed))
				if r.Warning != nil {
					slog.Warn("merge warnings", "err", r.Warning)
				}
			case engine.GameDetailLoaded:
				slog.Info("game detail loaded", "bracket_id", r.BracketID, "plays", len(r.Detail.Plays))
			case engine.DetailUnavailable:
				slog.Info("game detail unavailable", "bracket_id", r.BracketID, "reason", r.Reason)
			}
		}
	}
}
