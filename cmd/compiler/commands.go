package main

import (
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/compiler"
	"go.uber.org/zap"
)

// CompileCommand compiles named packages
type CompileCommand struct {
	Packages []string `arg:"" name:"package" help:"Package directory names, e.g. ApplicationTextpad."`
}

// Run compiles each package in turn. A failing package does not stop the rest.
func (c *CompileCommand) Run(app *App) error {
	ctx := app.Context()
	outcomes := make([]compiler.Outcome, 0, len(c.Packages))
	for _, name := range c.Packages {
		if ctx.Err() != nil {
			break
		}
		outcomes = append(outcomes, app.Compiler.Compile(ctx, name, app.DryRun, app.Config.Paths.PackagesRoot))
	}
	return app.Finish(outcomes)
}

// AllCommand compiles every package
type AllCommand struct{}

// Run compiles every package under the package root
func (c *AllCommand) Run(app *App) error {
	outcomes, err := app.Compiler.CompileAll(app.Context(), app.DryRun, app.Config.Paths.PackagesRoot)
	if err != nil && len(outcomes) == 0 {
		return err
	}
	if finishErr := app.Finish(outcomes); finishErr != nil {
		return finishErr
	}
	return err
}

// CleanCommand removes stale artifacts
type CleanCommand struct {
	All bool `help:"Remove every artifact, not only those of missing packages."`
}

// Run removes artifacts whose package no longer exists
func (c *CleanCommand) Run(app *App) error {
	removed, err := app.Compiler.Clean(app.Context(), app.Config.Paths.PackagesRoot, c.All)
	if err != nil {
		return err
	}
	app.Logger.Info("Clean finished", zap.Int("removed", len(removed)), zap.Bool("all", c.All))
	return nil
}
