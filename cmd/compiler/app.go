package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/config"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/compiler"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/render"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/report"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/id"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/utils"
	"go.uber.org/zap"
)

// errFailed makes the process exit non-zero when a package failed
var errFailed = errors.New("one or more packages failed")

// App holds the state shared by every subcommand
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Metrics  *monitoring.Metrics
	Compiler *compiler.Compiler
	Report   *report.Report
	DryRun   bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp loads configuration, applies flag overrides and wires the compiler
func NewApp(command *Command) (*App, error) {
	cfg, err := loadConfig(command)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var templates *render.TemplateSet
	if cfg.Paths.TemplatesDir != "" {
		templates, err = render.LoadTemplatesDir(cfg.Paths.TemplatesDir)
	} else {
		templates, err = render.DefaultTemplates()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	algorithm, err := utils.ParseHashAlgorithm(command.Checksum)
	if err != nil {
		return nil, err
	}

	dryRun := command.DryRun || command.Check
	buildID := id.NewBuildID()
	startedAt, err := buildID.Time()
	if err != nil {
		return nil, err
	}
	metrics := monitoring.NewMetrics()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &App{
		Config:  cfg,
		Logger:  logger.With(zap.String("build_id", buildID.String())),
		Metrics: metrics,
		Report:  report.New(buildID, startedAt, dryRun).WithHasher(utils.NewHasher(algorithm)),
		DryRun:  dryRun,
		ctx:     ctx,
		cancel:  cancel,
	}
	app.Compiler = compiler.New(compiler.OptionsFromConfig(cfg), templates, app.Logger).WithMetrics(metrics)
	return app, nil
}

func loadConfig(command *Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if command.Config != "" {
		cfg, err = config.LoadFile(command.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// CLI flags override file and environment
	if command.Root != "" {
		cfg.Paths.PackagesRoot = command.Root
	}
	if command.Build != "" {
		cfg.Paths.BuildRoot = command.Build
	}
	if command.Production {
		cfg.Compiler.Production = true
	}
	if command.Dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if command.Report != "" {
		cfg.Output.ReportPath = command.Report
	}
	if command.Metrics != "" {
		cfg.Output.MetricsPath = command.Metrics
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Context is cancelled on SIGINT or SIGTERM
func (a *App) Context() context.Context {
	return a.ctx
}

// Finish records the outcomes and writes the run outputs. It returns
// errFailed when any package failed.
func (a *App) Finish(outcomes []compiler.Outcome) error {
	a.Report.Add(outcomes...)

	if path := a.Config.Output.ReportPath; path != "" {
		if err := a.Report.WriteJSON(path); err != nil {
			a.Logger.Error("Failed to write build report", zap.Error(err))
		}
	}
	if path := a.Config.Output.MetricsPath; path != "" {
		if err := a.Metrics.WriteTextfile(path); err != nil {
			a.Logger.Error("Failed to write metrics", zap.Error(err))
		}
	}
	if a.Config.Logging.Development {
		if err := a.Report.PrintTree(os.Stdout); err != nil {
			a.Logger.Warn("Failed to print build tree", zap.Error(err))
		}
	}

	snap := a.Metrics.Snapshot()
	a.Logger.Info("Build finished",
		zap.Int64("packages", snap.Packages),
		zap.Int64("failures", snap.Failures),
		zap.Int64("skipped", snap.Skipped),
		zap.Int64("artifacts", snap.Artifacts),
		zap.Bool("dry_run", a.DryRun),
	)

	if !compiler.Succeeded(outcomes) {
		return errFailed
	}
	return nil
}

// Close releases signal handling and flushes the logger
func (a *App) Close() {
	a.cancel()
	_ = a.Logger.Sync()
}
