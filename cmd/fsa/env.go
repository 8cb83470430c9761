package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/adapters/loam"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/spf13/cobra"
)

// env is everything a command needs, built from the config file and flags.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	wb      *automata.Workbench
	metrics *observability.Metrics
	styler  tui.Styler
	color   bool
	// scratch holds definitions read from files named on the command line.
	scratch *memory.Store
	closers []func() error
}

func (e *env) Close() {
	for _, c := range e.closers {
		if err := c(); err != nil {
			e.logger.Warn("close failed", "error", err)
		}
	}
}

// loadConfig reads the config file and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("dir") {
		cfg.Store.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("store") {
		cfg.Store.Backend, _ = cmd.Flags().GetString("store")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level, format)

	noColor, _ := cmd.Flags().GetBool("no-color")
	color := !noColor && tui.IsTerminal(os.Stdout)

	e := &env{
		cfg:     cfg,
		logger:  logger,
		metrics: observability.NewMetrics(observability.WithRuntimeMetrics()),
		styler:  tui.NewStyler(color),
		color:   color,
		scratch: memory.NewStore(),
	}

	store, source, err := e.openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	sources := multiSource{e.scratch}
	if source != nil {
		sources = append(sources, source)
	}
	e.wb = automata.New(
		automata.WithStore(store),
		automata.WithSource(sources),
		automata.WithLogger(logger),
		automata.WithObserver(e.metrics),
	)
	logger.Debug("workbench ready", "backend", cfg.Store.Backend, "dir", cfg.Store.Dir)
	return e, nil
}

func (e *env) openStore(c config.StoreConfig) (ports.Store, ports.Source, error) {
	switch c.Backend {
	case "memory":
		return memory.NewStore(), nil, nil
	case "file":
		return file.NewStore(c.Dir), nil, nil
	case "redis":
		s := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithPrefix(c.Redis.Prefix),
			redis.WithTTL(c.Redis.TTL),
		)
		e.closers = append(e.closers, s.Close)
		return s, nil, nil
	case "loam":
		src, err := loam.Open(c.Dir)
		if err != nil {
			return nil, nil, err
		}
		return file.NewStore(c.Dir), src, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", c.Backend)
}

// resolve turns a command-line argument into a name the workbench knows.
// Paths to definition files are parsed and kept in the scratch store under
// their path, so they never leak into the configured store.
func (e *env) resolve(ctx context.Context, arg string) (string, error) {
	if !schema.IsDefinitionFile(arg) {
		return arg, nil
	}
	if _, err := os.Stat(arg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return arg, nil
		}
		return "", err
	}
	def, err := schema.ReadFile(arg)
	if err != nil {
		return "", err
	}
	name := filepath.ToSlash(arg)
	if err := e.scratch.Save(ctx, name, def); err != nil {
		return "", err
	}
	e.logger.Debug("definition loaded from file", "path", arg, "name", def.Name)
	return name, nil
}

func (e *env) resolveAll(ctx context.Context, args []string) ([]string, error) {
	names := make([]string, len(args))
	for i, arg := range args {
		n, err := e.resolve(ctx, arg)
		if err != nil {
			return nil, err
		}
		names[i] = n
	}
	return names, nil
}

// multiSource consults each source in order.
type multiSource []ports.Source

func (m multiSource) Load(ctx context.Context, name string) (*schema.Definition, error) {
	for _, s := range m {
		def, err := s.Load(ctx, name)
		if err == nil {
			return def, nil
		}
		if !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, name)
}

func (m multiSource) List(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, s := range m {
		list, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// withEnv wraps a command body with env setup and teardown.
func withEnv(run func(cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return run(cmd, e, args)
	}
}
