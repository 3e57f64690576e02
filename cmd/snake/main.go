package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikenye/gridsnake/internal/domain"
	"github.com/mikenye/gridsnake/internal/game"
	"github.com/mikenye/gridsnake/internal/ui/graphics"
	"github.com/mikenye/gridsnake/internal/ui/terminal"
)

type options struct {
	ui      string
	seed    int64
	scale   int
	logPath string
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var opts options
	flag.StringVar(&opts.ui, "ui", getEnvOrDefault("SNAKE_UI", "window"), "Frontend to play in: window or term")
	flag.Int64Var(&opts.seed, "seed", getEnvInt64OrDefault("SNAKE_SEED", time.Now().UnixNano()), "Seed for food placement")
	flag.IntVar(&opts.scale, "scale", 1, "Window scale factor (window frontend only)")
	flag.StringVar(&opts.logPath, "log", "", "Log file for the term frontend (logs are discarded when empty)")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	if opts.ui != "window" && opts.ui != "term" {
		return fmt.Errorf("unknown ui %q (want window or term)", opts.ui)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the terminal owns stdout/stderr while the term frontend runs
	if opts.ui == "term" {
		out := log.Writer()
		defer log.SetOutput(out)
		if opts.logPath != "" {
			f, err := tea.LogToFile(opts.logPath, "snake")
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}
	}

	session, err := game.NewSession(domain.DefaultGameConfig(), opts.seed, log.Default())
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	log.Printf("Session %s started (ui=%s, seed=%d)", session.ID, opts.ui, opts.seed)

	if err := play(ctx, opts, session); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	log.Printf("Session %s finished", session.ID)
	return nil
}

func play(ctx context.Context, opts options, session *game.Session) error {
	if opts.ui == "term" {
		return terminal.Run(ctx, session)
	}
	return graphics.NewEngine(ctx, session, opts.scale).Run()
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64OrDefault(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		var i int64
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}
