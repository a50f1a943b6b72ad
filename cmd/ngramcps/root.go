package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ngramcps/config"
	"github.com/forestrie/go-ngramcps/decider"
	"github.com/forestrie/go-ngramcps/ngram"
	"github.com/forestrie/go-ngramcps/seeddb"
	"github.com/forestrie/go-ngramcps/tm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const serviceName = "ngramcps"

var (
	ErrNoInput               = errors.New("ngramcps: one of --machine or --seed-database is required")
	ErrNoUndecidedIndex      = errors.New("ngramcps: --undecided-index is required with --seed-database")
	ErrIndexOverwritesItself = errors.New("ngramcps: an output index would overwrite the input index")
)

type rootFlags struct {
	machine         string
	seedDatabase    string
	undecidedIndex  string
	configPath      string
	radius          uint8
	maxContextCount int
	workers         int
	outputDir       string
	metricsListen   string
	logLevel        string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "ngramcps",
		Short: "Decide whether Turing machines loop forever with n-gram closed position sets",
		Long: `ngramcps classifies one machine given with --machine, or every machine
named by an undecided index of a seed database.

Batch mode writes index-looping-n-<radius> and index-undecided-n-<radius>
to the output directory.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if f.seedDatabase != "" {
				return runBatch(cmd.Context(), cfg, f)
			}
			if f.machine != "" {
				return runSingle(cmd, cfg, f.machine)
			}
			return ErrNoInput
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.machine, "machine", "m", "", "machine in 30 or 34 character form")
	fl.StringVar(&f.seedDatabase, "seed-database", "", "seed database file")
	fl.StringVar(&f.undecidedIndex, "undecided-index", "", "index file naming the machines to classify")
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.Uint8Var(&f.radius, "radius", config.DefaultRadius, "n-gram radius")
	fl.IntVar(&f.maxContextCount, "max-context-count", config.DefaultMaxContextCount, "reachable context budget per machine")
	fl.IntVar(&f.workers, "workers", 0, "concurrent classifications (default the number of CPUs)")
	fl.StringVar(&f.outputDir, "output-dir", config.DefaultOutputDir, "directory for the output indices")
	fl.StringVar(&f.metricsListen, "metrics-listen", "", "address serving /metrics during a batch run")
	fl.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level")

	cmd.AddCommand(newSimulateCmd())
	return cmd
}

// resolveConfig loads the configuration file, if any, and applies the flags
// set explicitly on the command line over it.
func resolveConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.ReadFile(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("radius") {
		cfg.Radius = f.radius
	}
	if fl.Changed("max-context-count") {
		cfg.MaxContextCount = f.maxContextCount
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if fl.Changed("metrics-listen") {
		cfg.MetricsListen = f.metricsListen
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSingle(cmd *cobra.Command, cfg config.Config, machine string) error {
	m, err := tm.Parse(machine)
	if err != nil {
		return err
	}
	result, err := ngram.Classify(m, cfg.Radius, cfg.MaxContextCount)
	if err != nil {
		return err
	}
	if result == ngram.LoopsForever {
		fmt.Fprintf(cmd.OutOrStdout(), "%s loops forever\n", machine)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s may halt\n", machine)
	return nil
}

func runBatch(ctx context.Context, cfg config.Config, f rootFlags) error {
	if f.undecidedIndex == "" {
		return ErrNoUndecidedIndex
	}

	logger.New(cfg.LogLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName(serviceName)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	loopingPath := filepath.Join(cfg.OutputDir, seeddb.LoopingIndexName(cfg.Radius))
	undecidedPath := filepath.Join(cfg.OutputDir, seeddb.UndecidedIndexName(cfg.Radius))
	for _, out := range []string{loopingPath, undecidedPath} {
		same, err := samePath(f.undecidedIndex, out)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("%w: %s", ErrIndexOverwritesItself, out)
		}
	}

	db, dbFile, err := seeddb.Open(f.seedDatabase)
	if err != nil {
		return err
	}
	defer dbFile.Close()

	indexFile, err := os.Open(f.undecidedIndex)
	if err != nil {
		return err
	}
	defer indexFile.Close()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	loopingFile, err := os.Create(loopingPath)
	if err != nil {
		return err
	}
	defer loopingFile.Close()
	undecidedFile, err := os.Create(undecidedPath)
	if err != nil {
		return err
	}
	defer undecidedFile.Close()

	var opts []decider.Option
	if cfg.MetricsListen != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, decider.WithMetrics(decider.NewMetrics(reg)))
		srv := serveMetrics(log, cfg.MetricsListen, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	b, err := decider.NewBatch(log, decider.Config{
		Radius:          cfg.Radius,
		MaxContextCount: cfg.MaxContextCount,
		Workers:         cfg.Workers,
	}, opts...)
	if err != nil {
		return err
	}

	log.Infof("seed database %s holds %d machines", f.seedDatabase, db.Len())

	looping := seeddb.NewIndexWriter(loopingFile)
	undecided := seeddb.NewIndexWriter(undecidedFile)
	_, runErr := b.Run(ctx, db, seeddb.NewIndexReader(indexFile), looping, undecided)

	// flush what was decided even when the run stopped early
	if err := looping.Flush(); err != nil {
		return err
	}
	if err := undecided.Flush(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	log.Infof("wrote %s (%d) and %s (%d)", loopingPath, looping.Count(), undecidedPath, undecided.Count())
	return nil
}

func serveMetrics(log *logger.WrappedLogger, addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server on %s stopped, continuing without metrics: %v", addr, err)
		}
	}()
	log.Infof("serving metrics on %s/metrics", addr)
	return srv
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
