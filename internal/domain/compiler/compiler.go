package compiler

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/artifact"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/descriptor"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/lingua"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/render"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/window"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/sandbox"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"go.uber.org/zap"
)

// routine builds the artifacts of one package kind
type routine func(c *Compiler, ctx context.Context, d *types.Descriptor) ([]types.Artifact, error)

var routines = map[types.PackageKind]routine{
	types.KindApplication: (*Compiler).compileProject,
	types.KindSystem:      (*Compiler).compileProject,
	types.KindPanelItem:   (*Compiler).compilePanelItem,
	types.KindService:     (*Compiler).compileService,
}

// Compiler turns package directories into build artifacts. Packages are
// compiled one after another; the template set is shared read-only.
type Compiler struct {
	opts      Options
	renderer  *render.Renderer
	parser    *descriptor.Parser
	generator *codegen.Generator
	source    window.Source
	checker   sandbox.Checker
	writer    artifact.Writer
	discard   artifact.Writer
	metrics   *monitoring.Metrics
	logger    *logging.Logger
}

// New creates a compiler over an immutable template set
func New(opts Options, templates *render.TemplateSet, logger *logging.Logger) *Compiler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	generator := codegen.NewGenerator(logger)
	if opts.StrictMarkup {
		generator.WithPolicy(codegen.MarkupPolicy())
	}

	var checker sandbox.Checker = sandbox.Nop{}
	if opts.VerifyScripts {
		checker = sandbox.New(sandbox.DefaultConfig())
	}

	return &Compiler{
		opts:      opts,
		renderer:  render.NewRenderer(templates),
		parser:    descriptor.NewParser(opts.DefaultLanguage, logger),
		generator: generator,
		source:    window.NewFileSource(logger),
		checker:   checker,
		writer:    artifact.NewFileWriter(logger).WithPrecompress(opts.Precompress),
		discard:   artifact.NewDiscard(logger),
		logger:    logger.Named("compiler"),
	}
}

// WithMetrics adds metrics tracking to the compiler and its collaborators
func (c *Compiler) WithMetrics(metrics *monitoring.Metrics) *Compiler {
	c.metrics = metrics
	c.generator.WithMetrics(metrics)
	if fw, ok := c.writer.(*artifact.FileWriter); ok {
		fw.WithMetrics(metrics)
	}
	return c
}

// WithSource replaces the window model source
func (c *Compiler) WithSource(source window.Source) *Compiler {
	c.source = source
	return c
}

// WithWriter replaces the artifact writer used outside dry-run
func (c *Compiler) WithWriter(writer artifact.Writer) *Compiler {
	c.writer = writer
	return c
}

// WithChecker replaces the client module syntax checker
func (c *Compiler) WithChecker(checker sandbox.Checker) *Compiler {
	c.checker = checker
	return c
}

// Compile compiles the package directory root/name. The kind is inferred
// from the name prefix. In dry-run the artifacts are generated in full but
// nothing is written.
func (c *Compiler) Compile(ctx context.Context, name string, dryRun bool, root string) Outcome {
	if err := paths.ValidatePackageName(name); err != nil {
		return c.reject(name, "", fmt.Errorf("%w: %v", ErrInvalidName, err))
	}

	kind, ok := types.KindFromName(name)
	if !ok {
		return c.reject(name, "", fmt.Errorf("%w: %s", ErrUnrecognizedKind, name))
	}

	pkg := paths.PackagePath(root, name)
	if _, err := os.Stat(pkg.Descriptor()); err != nil {
		return c.reject(name, kind, fmt.Errorf("%w: %s", ErrPackageNotFound, pkg.Dir()))
	}

	return c.compile(ctx, name, kind, dryRun, func() (*types.Descriptor, error) {
		return c.parser.ParseFile(pkg.Descriptor(), kind)
	})
}

// CompileAll compiles every package directory under root that holds a
// descriptor, in name order. The kind comes from the descriptor's declared
// type; directories with an unreadable descriptor or unknown type are
// skipped. The error is only set when root itself cannot be enumerated.
func (c *Compiler) CompileAll(ctx context.Context, dryRun bool, root string) ([]Outcome, error) {
	found, err := c.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(found))
	for _, d := range found {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		if err := paths.ValidatePackageName(d.ClassName); err != nil {
			outcomes = append(outcomes, c.reject(d.ClassName, d.Kind, fmt.Errorf("%w: %v", ErrInvalidName, err)))
			continue
		}
		outcomes = append(outcomes, c.compile(ctx, d.ClassName, d.Kind, dryRun, func() (*types.Descriptor, error) {
			return d, nil
		}))
	}
	return outcomes, nil
}

func (c *Compiler) compile(ctx context.Context, name string, kind types.PackageKind, dryRun bool, load func() (*types.Descriptor, error)) (out Outcome) {
	out = Outcome{Package: name, Kind: kind}
	timer := monitoring.NewTimer(c.metrics, string(kind))
	log := c.logger.ForPackage(name, string(kind))

	defer func() {
		out.Duration = timer.Stop(out.Result)
		switch out.Result {
		case types.ResultFailure:
			log.Error("Package failed", zap.Error(out.Err))
		case types.ResultSkippedDisabled:
			log.Info("Not enabled, skipping")
		default:
			log.Info("Package compiled",
				zap.Strings("artifacts", artifactKinds(out.Artifacts)),
				zap.Bool("dry_run", dryRun),
				zap.Duration("duration", out.Duration),
			)
		}
	}()

	fail := func(err error) Outcome {
		out.Result = types.ResultFailure
		out.Err = err
		return out
	}

	build, ok := routines[kind]
	if !ok {
		return fail(fmt.Errorf("%w: %s", ErrUnrecognizedKind, kind))
	}

	d, err := load()
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrDescriptor, err))
	}
	log.Debug("Compiling package", zap.String("path", d.Path))

	if c.opts.Production && !d.Enabled {
		out.Result = types.ResultSkippedDisabled
		return out
	}

	artifacts, err := build(c, ctx, d)
	if err != nil {
		return fail(err)
	}
	out.Artifacts = artifacts

	writer := c.writer
	if dryRun {
		writer = c.discard
	}
	for _, a := range artifacts {
		if err := writer.Write(ctx, a); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWrite, err))
		}
	}

	out.Result = types.ResultSuccess
	return out
}

// compileProject builds Application and System packages, the only kinds
// with windows and a markup artifact
func (c *Compiler) compileProject(ctx context.Context, d *types.Descriptor) ([]types.Artifact, error) {
	var windows []types.Window
	if d.HasSchema() {
		var err error
		windows, err = c.source.Windows(ctx, d.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWindowModel, err)
		}
	}

	code := c.generator.Package(packageInfo(d), windows)
	return c.render(d, code)
}

func (c *Compiler) compilePanelItem(_ context.Context, d *types.Descriptor) ([]types.Artifact, error) {
	return c.render(d, codegen.PackageCode{})
}

func (c *Compiler) compileService(_ context.Context, d *types.Descriptor) ([]types.Artifact, error) {
	return c.render(d, codegen.PackageCode{})
}

// render substitutes the package into its kind's templates
func (c *Compiler) render(d *types.Descriptor, code codegen.PackageCode) ([]types.Artifact, error) {
	spec, ok := d.Kind.Spec()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedKind, d.Kind)
	}

	table := lingua.Build(d, c.opts.DefaultLanguage)
	values := render.Values{
		render.TokenPackageType:     spec.Label,
		render.TokenClassName:       d.ClassName,
		render.TokenTimestamp:       c.opts.Now().Format(TimestampLayout),
		render.TokenCompatibility:   js.PrintExpr(js.Strings(d.Compatibility)),
		render.TokenLinguas:         table.Script(),
		render.TokenDefaultLanguage: js.Quote(c.opts.DefaultLanguage),
		render.TokenCodeWindows:     c.windowClasses(code),
		render.TokenCodePrepend:     code.PrependScript(),
		render.TokenCodeAppend:      code.AppendScript(),
		render.TokenRootWindow:      code.RootWindow,
	}

	client, err := c.renderer.Client(d.Kind, values)
	if err != nil {
		return nil, err
	}
	if err := c.checker.CheckSyntax(d.ClassName+types.ArtifactClientModule.Extension(), client); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	build := paths.BuildPath(c.opts.BuildRoot)
	artifacts := []types.Artifact{
		{Kind: types.ArtifactBackendStub, Content: c.renderer.BackendStub(values)},
		{Kind: types.ArtifactStylesheet, Content: c.renderer.Stylesheet(values)},
		{Kind: types.ArtifactClientModule, Content: client},
	}
	if spec.UIBearing {
		artifacts = append(artifacts, types.Artifact{Kind: types.ArtifactMarkup, Content: code.Markup()})
	}
	for i := range artifacts {
		artifacts[i].Path = build.Artifact(d.ClassName, artifacts[i].Kind)
	}
	return artifacts, nil
}

// windowClasses renders every window class in order
func (c *Compiler) windowClasses(code codegen.PackageCode) string {
	var sb strings.Builder
	for _, w := range code.Windows {
		sb.WriteString(c.renderer.Window(render.Values{
			render.TokenWindowName: w.ID,
			render.TokenIsDialog:   strconv.FormatBool(w.IsDialog),
			render.TokenContent:    w.ContentLiteral(),
			render.TokenCodeInit:   w.InitScript(),
			render.TokenCodeClass:  w.ClassScript(),
			render.TokenCodeCreate: w.CreateScript(),
		}))
	}
	return sb.String()
}

// reject reports a package that failed before its descriptor was read
func (c *Compiler) reject(name string, kind types.PackageKind, err error) Outcome {
	label := string(kind)
	if label == "" {
		label = "unknown"
	}
	monitoring.NewTimer(c.metrics, label).Stop(types.ResultFailure)
	c.logger.Error("Package failed", zap.String("package", name), zap.Error(err))
	return Outcome{Package: name, Kind: kind, Result: types.ResultFailure, Err: err}
}

func packageInfo(d *types.Descriptor) codegen.PackageInfo {
	return codegen.PackageInfo{
		ClassName: d.ClassName,
		Title:     d.Title,
		Icon:      d.Icon,
		Mimes:     d.MimeTypes,
	}
}

func artifactKinds(artifacts []types.Artifact) []string {
	kinds := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		kinds = append(kinds, string(a.Kind))
	}
	return kinds
}

