package cli

import (
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ownership-watch/internal/config"
	"ownership-watch/internal/fetch"
	"ownership-watch/internal/metrics"
	"ownership-watch/internal/pipeline"
	"ownership-watch/internal/sink"
	"ownership-watch/internal/source"
	"ownership-watch/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	ConfigPath string
	Interval   time.Duration
	Once       bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Poll the disclosure feeds, once or on an interval",
		Long: `Run the collection pipeline. With --once a single cycle executes and
the process exits; otherwise the pipeline re-runs every --interval until
interrupted. State lives under the configured store directory and is
rewritten atomically at the end of each cycle.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "config.yml", "path to YAML config")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 15*time.Minute, "run interval")
	cmd.Flags().BoolVar(&opts.Once, "once", false, "run a single cycle then exit")

	return cmd
}

func runPipeline(cmd *cobra.Command, opts *RunOptions) error {
	// .env is optional; it only carries the User-Agent override.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	client := fetch.New(cfg.HTTP, cfg.ResolveUserAgent())
	st, err := store.NewFileStore(cfg.Store.Dir)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enable && !opts.Once {
		m = metrics.New()
		go func() {
			if err := m.Serve(cfg.Metrics.Listen); err != nil {
				log.Printf("metrics listener: %v", err)
			}
		}()
		log.Printf("metrics on %s", cfg.Metrics.Listen)
	}

	p := &pipeline.Pipeline{
		Sources: []source.Source{
			source.NewSEC(cfg.SEC, client),
			source.NewFrankfurt(cfg.Frankfurt, client),
		},
		Store:     st,
		Sinks:     []sink.Sink{sink.NewCSV(filepath.Join(cfg.Store.Dir, "events.csv"))},
		Metrics:   m,
		MaxEvents: cfg.Store.MaxEvents,
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := p.Run(ctx); err != nil {
		if opts.Once {
			return err
		}
		log.Printf("run: %v", err)
	}
	if opts.Once {
		return nil
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()
	log.Printf("watching: interval=%s", opts.Interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("stopping: %v", ctx.Err())
			return nil
		case <-ticker.C:
			if _, err := p.Run(ctx); err != nil {
				log.Printf("run: %v", err)
			}
		}
	}
}
