package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/funcattr/internal/config"
	"github.com/vk/funcattr/internal/ctxlog"
	"github.com/vk/funcattr/internal/registry"
	"github.com/vk/funcattr/internal/store"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	store    *store.Store
	config   *config.Model
	output   string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry, and
// store. Definition loading or manifest validation failures are programmer
// or configuration errors and panic; the CLI entrypoint recovers them.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var configPaths []string
	if appConfig.ModulesPath != "" {
		configPaths = append(configPaths, appConfig.ModulesPath)
	}
	if appConfig.GridPath != "" {
		configPaths = append(configPaths, appConfig.GridPath)
	}

	cfgModel, err := loader.Load(ctx, configPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go handler modules registered.", "count", len(modules))

	if err := declareAttributes(ctx, reg, cfgModel); err != nil {
		// A manifest that fails to declare is a mismatch between config and
		// code, so we panic.
		panic(err)
	}
	logger.Debug("Attribute manifests declared.", "count", reg.DeclaredCount())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		store:    store.New(reg),
		config:   cfgModel,
		output:   appConfig.Output,
	}
}

// declareAttributes binds every attribute manifest to its registered Go
// handler and declares it. All failures are collected so a broken setup
// reports every problem at once.
func declareAttributes(ctx context.Context, reg *registry.Registry, model *config.Model) error {
	var errs []string
	for _, def := range model.Attributes {
		fn, ok := reg.Handler(def.Handler)
		if !ok {
			errs = append(errs, fmt.Sprintf("attribute '%s': manifest names Go handler '%s', which is not registered", def.Name, def.Handler))
			continue
		}
		if err := reg.Declare(def.Module, def.Name, def.Flags, fn); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("attribute declaration failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Store returns the application's metadata store. This is primarily for testing.
func (a *App) Store() *store.Store {
	return a.store
}
