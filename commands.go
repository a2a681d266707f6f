package main

import (
	"chainwalk/config"
	"chainwalk/controllers/walker"
	"chainwalk/gates/storage"
	"chainwalk/gates/storage/arena"
	"chainwalk/gates/storage/list"
	"chainwalk/models/entity"
	"chainwalk/pkg"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app хранит состояние одного запуска: флаги, конфиг и логгер
type app struct {
	configPath  string
	storageName string
	verbose     bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "chainwalk",
		Short: "Walk a doubly linked chain forward and backward",
		Long: `chainwalk builds a doubly linked chain of integers and walks it
from head to tail, then from tail back to head, printing one value per line.

Run without arguments to walk the chain 37 <-> 38 <-> 39.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWalk(cmd, walker.ModeBoth, false, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to YAML config (missing file means defaults)")
	rootCmd.PersistentFlags().StringVar(&a.storageName, "storage", "", "storage backend: list or arena (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.newWalkCmd(), a.newVerifyCmd())
	return rootCmd
}

func (a *app) newWalkCmd() *cobra.Command {
	var (
		direction string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "walk [values...]",
		Short: "Build a chain from values (or the configured seed) and walk it",
		Example: `  chainwalk walk
  chainwalk walk 1 2 3 --direction backward
  chainwalk walk --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := walker.ParseMode(direction)
			if err != nil {
				return err
			}
			return a.runWalk(cmd, mode, asJSON, args)
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", string(walker.ModeBoth), "forward, backward or both")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print each step as a JSON object")
	return cmd
}

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [values...]",
		Short: "Build a chain and check its link invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			wErr := pkg.NewWrappedError("verify").WithLogger(a.logger)

			st, err := a.buildChain(args)
			if err != nil {
				return err
			}
			st.Print(cmd.OutOrStdout())
			if err := storage.Verify(st); err != nil {
				return wErr.Specify(err, "storage.Verify(st)").LogError()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes\n", st.Len())
			return nil
		},
	}
}

// setup загружает конфиг, применяет флаги и создает логгер
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.storageName != "" {
		cfg.Storage = a.storageName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	zapConfig := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zapConfig.Level = level
	if a.verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) runWalk(cmd *cobra.Command, mode walker.Mode, asJSON bool, args []string) error {
	st, err := a.buildChain(args)
	if err != nil {
		return err
	}

	visit := walker.LinePrinter(cmd.OutOrStdout())
	if asJSON {
		visit = walker.JSONPrinter(cmd.OutOrStdout())
	}
	return walker.NewWalker(st, visit, a.logger).WithVerify(a.cfg.Verify).Run(mode)
}

// buildChain строит цепочку из аргументов, а если их нет, то из конфига
func (a *app) buildChain(args []string) (storage.Storage, error) {
	wErr := pkg.NewWrappedError("(a *app) buildChain()").WithLogger(a.logger)

	seed := entity.Seed(a.cfg.Seed)
	if len(args) > 0 {
		parsed, err := entity.ParseSeed(args)
		if err != nil {
			return nil, wErr.Specify(err, "entity.ParseSeed(args)").LogError()
		}
		seed = parsed
	}

	st := newStorage(a.cfg.Storage, a.cfg.InitialID)
	if _, err := seed.Populate(st); err != nil {
		return nil, wErr.Specify(err, "seed.Populate(st)").LogError()
	}
	wErr.LogMsg("chain built", zap.String("storage", a.cfg.Storage), zap.Int64("length", st.Len()))
	return st, nil
}

func newStorage(name string, initID int64) storage.Storage {
	if name == config.StorageArena {
		return arena.NewArena(initID)
	}
	return list.NewList(initID)
}
