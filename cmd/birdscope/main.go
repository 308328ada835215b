package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"birdscope/internal/analyze"
	"birdscope/internal/cmdlog"
	"birdscope/internal/config"
	"birdscope/internal/ingest"
	"birdscope/internal/lexicon"
	"birdscope/internal/logging"
	"birdscope/internal/memo"
	"birdscope/internal/metrics"
	"birdscope/internal/server"
	"birdscope/internal/store/timelinedb"
	"birdscope/internal/theme"
	"birdscope/internal/xclient"
)

func main() {
	_ = godotenv.Load()
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "serve":
		cmdServe()
	case "report":
		cmdReport()
	case "history":
		cmdHistory()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: birdscope <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./birdscope.yaml")
	fmt.Println("  serve       Run the analytics HTTP server")
	fmt.Println("  report      Print the JSON report for a handle")
	fmt.Println("  history     Show recent report generations")
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./birdscope.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "./birdscope.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	err := cmdlog.Run("serve", func() error {
		cfg := loadConfig(*cfgPath)
		metrics.StartServer(cfg.Metrics.Addr)

		analyzer, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}
		db := openStore(cfg)
		if db != nil {
			defer db.Close()
		}
		fetcher := ingest.NewFetcher(
			xclient.New(cfg.Credentials), db,
			time.Duration(cfg.Analysis.SnapshotTTLMinutes)*time.Minute,
			cfg.Analysis.TimelineCount,
		)
		srv := server.New(cfg.Server, fetcher, analyzer, db)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()
		logging.Info("serving", map[string]any{"addr": cfg.Server.Addr})
		select {
		case err := <-errCh:
			return err
		case <-stop:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	})
	if err != nil {
		os.Exit(1)
	}
}

func cmdReport() {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	cfgPath := fs.String("config", "./birdscope.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("usage: birdscope report [options] <handle>")
		os.Exit(2)
	}
	handle := fs.Arg(0)
	err := cmdlog.Run("report", func() error {
		cfg := loadConfig(*cfgPath)
		analyzer, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}
		db := openStore(cfg)
		if db != nil {
			defer db.Close()
		}
		fetcher := ingest.NewFetcher(
			xclient.New(cfg.Credentials), db,
			time.Duration(cfg.Analysis.SnapshotTTLMinutes)*time.Minute,
			cfg.Analysis.TimelineCount,
		)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		start := time.Now()
		posts, err := fetcher.Timeline(ctx, handle)
		if err != nil {
			return err
		}
		report, err := analyzer.Report(posts)
		if err != nil {
			return err
		}
		if db != nil {
			_ = db.RecordReport(ctx, time.Now(), handle, len(posts), time.Since(start))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	cfgPath := fs.String("config", "./birdscope.yaml", "config path")
	limit := fs.Int("limit", 20, "events to show")
	_ = fs.Parse(os.Args[2:])
	err := cmdlog.Run("history", func() error {
		cfg := loadConfig(*cfgPath)
		db, err := timelinedb.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		events, err := db.RecentReports(context.Background(), *limit)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Printf("%s  @%-15s  %4d posts  %s\n",
				e.TS.Format(time.RFC3339), e.Handle, e.Posts, e.Duration)
		}
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logging.Warn("config_fallback_defaults", map[string]any{"path": path, "error": err.Error()})
		cfg = config.Default()
		cfg.ResolveEnv()
	}
	if cfg.Credentials.ConsumerKey == "" {
		fmt.Println("warning: missing TWITTER_CONSUMER_KEY; API calls will fail")
	}
	return cfg
}

func buildAnalyzer(cfg config.Config) (*analyze.Analyzer, error) {
	stops, err := lexicon.LoadStopWords(cfg.Resources.StopWordPaths...)
	if err != nil {
		return nil, err
	}
	valences, err := lexicon.LoadValences(cfg.Resources.ValencePath)
	if err != nil {
		return nil, err
	}
	return analyze.New(stops, valences, memo.New()), nil
}

func openStore(cfg config.Config) *timelinedb.DB {
	if cfg.Storage.DBPath == "" {
		return nil
	}
	db, err := timelinedb.Open(cfg.Storage.DBPath)
	if err != nil {
		logging.Warn("store_unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	return db
}
