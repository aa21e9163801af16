package codegen

import (
	"sort"
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Indentation depths of the generated fragments inside the templates
const (
	InitDepth      = 4
	ClassDepth     = 3
	CreateDepth    = 5
	BootstrapDepth = 4
)

// RootWindowVar holds the root window instance in the client module
const RootWindowVar = "root_window"

// PackageInfo is the package-level input of window generation
type PackageInfo struct {
	ClassName string
	Title     string
	Icon      string
	Mimes     []string
}

// WindowCode is the generated code of one window. It is built once and not
// modified afterwards.
type WindowCode struct {
	ID       string
	IsRoot   bool
	IsDialog bool
	Init     []js.Stmt
	Handlers []js.Property
	Create   []js.Stmt
	Bindings []types.SignalBinding
	Content  string // sanitized markup
	Raw      string // markup as supplied
}

// InitScript prints the initialization statements
func (w WindowCode) InitScript() string {
	return js.Print(w.Init, InitDepth)
}

// ClassScript prints the handler methods
func (w WindowCode) ClassScript() string {
	return js.PrintProperties(w.Handlers, ClassDepth)
}

// CreateScript prints the creation binding statements
func (w WindowCode) CreateScript() string {
	return js.Print(w.Create, CreateDepth)
}

// ContentLiteral is the sanitized markup as a string literal
func (w WindowCode) ContentLiteral() string {
	return js.Quote(w.Content)
}

// handler returns the body of a generated handler method
func (w WindowCode) handler(name string) (*js.Func, bool) {
	for _, h := range w.Handlers {
		if h.Key == name {
			fn, ok := h.Value.(*js.Func)
			return fn, ok
		}
	}
	return nil, false
}

// PackageCode accumulates the windows of one package
type PackageCode struct {
	Windows    []WindowCode
	Prepend    []js.Stmt
	Append     []js.Stmt
	RootWindow string
}

// PrependScript prints the root window construction
func (p PackageCode) PrependScript() string {
	return js.Print(p.Prepend, BootstrapDepth)
}

// AppendScript prints the root window show call
func (p PackageCode) AppendScript() string {
	return js.Print(p.Append, BootstrapDepth)
}

// Markup joins the raw content of every window in order
func (p PackageCode) Markup() string {
	parts := make([]string, 0, len(p.Windows))
	for _, w := range p.Windows {
		parts = append(parts, w.Raw)
	}
	return strings.Join(parts, "\n")
}

// Generator turns window models into client code
type Generator struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics
	policy  *bluemonday.Policy
}

// NewGenerator creates a window code generator
func NewGenerator(logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{logger: logger.Named("codegen")}
}

// WithMetrics sets the metrics collector
func (g *Generator) WithMetrics(metrics *monitoring.Metrics) *Generator {
	g.metrics = metrics
	return g
}

// WithPolicy filters window content through policy before embedding
func (g *Generator) WithPolicy(policy *bluemonday.Policy) *Generator {
	g.policy = policy
	return g
}

// Package generates every window in order. The first window is the root
// window and is the only one receiving bootstrap statements.
func (g *Generator) Package(pkg PackageInfo, windows []types.Window) PackageCode {
	var code PackageCode
	for i, w := range windows {
		wc := g.Window(pkg, w, i == 0)
		if wc.IsRoot {
			code.RootWindow = RootWindowVar
			code.Prepend = []js.Stmt{
				js.Let(RootWindowVar, js.NewOf(js.Id(WindowClass(wc.ID)), js.Id("self"))),
			}
			code.Append = []js.Stmt{
				js.Do(js.MethodCall(js.Id(RootWindowVar), "show")),
			}
		}
		code.Windows = append(code.Windows, wc)
	}
	return code
}

// Window generates the code of a single window
func (g *Generator) Window(pkg PackageInfo, w types.Window, root bool) WindowCode {
	props := make(map[string]interface{}, len(w.Properties)+2)
	for k, v := range w.Properties {
		props[k] = v
	}
	if isUnset(props, PropTitle) {
		props[PropTitle] = pkg.Title
	}
	if isUnset(props, PropIcon) {
		props[PropIcon] = pkg.Icon
	}

	content := w.Content
	if g.policy != nil {
		content = g.policy.Sanitize(content)
	}

	wc := WindowCode{
		ID:       w.ID,
		IsRoot:   root,
		IsDialog: strings.HasSuffix(w.Property(PropType), "Dialog"),
		Init:     initStatements(props),
		Content:  SanitizeMarkup(content),
		Raw:      w.Content,
	}

	handlerIndex := make(map[string]int)
	for _, b := range bindings(w) {
		body := g.resolve(pkg, w.ID, b)
		method := js.Prop(b.Handler, js.Fn([]string{"el", "ev"},
			append([]js.Stmt{js.Let("self", js.This())}, body...)...))

		// Duplicate handler names overwrite in place
		if i, ok := handlerIndex[b.Handler]; ok {
			wc.Handlers[i] = method
		} else {
			handlerIndex[b.Handler] = len(wc.Handlers)
			wc.Handlers = append(wc.Handlers, method)
		}

		wc.Create = append(wc.Create, creationBinding(b))
		wc.Bindings = append(wc.Bindings, b)
	}

	g.lintWidgets(w)
	if g.metrics != nil {
		g.metrics.IncWindows()
	}

	g.logger.Debug("Generated window",
		zap.String("package", pkg.ClassName),
		zap.String("window", w.ID),
		zap.Bool("root", root),
		zap.Int("handlers", len(wc.Handlers)),
	)
	return wc
}

// resolve selects the handler body: canned snippet, file chooser, or empty
// for the generic path
func (g *Generator) resolve(pkg PackageInfo, windowID string, b types.SignalBinding) []js.Stmt {
	env := Env{Mimes: pkg.Mimes, Widget: b.Widget}

	if snippet, ok := LookupSnippet(b.Handler); ok {
		if snippet.NeedsReview {
			g.logger.Warn("Emitting unconfirmed canned snippet",
				zap.String("package", pkg.ClassName),
				zap.String("window", windowID),
				zap.String("handler", b.Handler),
				zap.String("snippet", snippet.Name),
			)
		}
		g.recordSignal(monitoring.PathCanned)
		return snippet.Build(env)
	}

	if b.Signal == SignalFileSet {
		g.recordSignal(monitoring.PathChooser)
		return FileChooser.Build(env)
	}

	g.recordSignal(monitoring.PathGeneric)
	return nil
}

func (g *Generator) recordSignal(path string) {
	if g.metrics != nil {
		g.metrics.RecordSignal(path)
	}
}

// lintWidgets warns about signals bound to widgets absent from the markup
func (g *Generator) lintWidgets(w types.Window) {
	if len(w.Signals) == 0 || strings.TrimSpace(w.Content) == "" {
		return
	}
	widgets := make([]string, 0, len(w.Signals))
	for widget := range w.Signals {
		widgets = append(widgets, widget)
	}

	missing, err := MissingWidgets(w.Content, widgets)
	if err != nil {
		g.logger.Warn("Failed to inspect window markup", zap.String("window", w.ID), zap.Error(err))
		return
	}
	for _, widget := range missing {
		g.logger.Warn("Signal bound to widget missing from markup",
			zap.String("window", w.ID),
			zap.String("widget", widget),
		)
	}
}

// bindings flattens the signal table in sorted widget and signal order
func bindings(w types.Window) []types.SignalBinding {
	widgets := make([]string, 0, len(w.Signals))
	for widget := range w.Signals {
		widgets = append(widgets, widget)
	}
	sort.Strings(widgets)

	var out []types.SignalBinding
	for _, widget := range widgets {
		signals := w.Signals[widget]
		names := make([]string, 0, len(signals))
		for s := range signals {
			names = append(names, s)
		}
		sort.Strings(names)

		for _, s := range names {
			out = append(out, types.SignalBinding{
				Widget:  widget,
				Signal:  s,
				Handler: NormalizeHandler(signals[s]),
			})
		}
	}
	return out
}

// creationBinding wires the widget's DOM event to the handler method
func creationBinding(b types.SignalBinding) js.Stmt {
	invoke := js.Do(js.CallOf(js.Dot(js.Id("self"), b.Handler), js.This(), js.Id("ev")))
	find := func(selector string) js.Expr {
		return js.MethodCall(js.Id("el"), "find", js.Str(selector))
	}

	switch b.Signal {
	case SignalFileSet:
		return js.Do(js.MethodCall(find("."+b.Widget+" button"), "click",
			js.Fn([]string{"ev"}, invoke)))
	case SignalInputActivate:
		return js.Do(js.MethodCall(find("."+b.Widget), "keypress",
			js.Fn([]string{"ev"},
				js.Let("k", js.Op(js.Dot(js.Id("ev"), "keyCode"), "||", js.Dot(js.Id("ev"), "which"))),
				js.When(js.Op(js.Id("k"), "==", js.Num(13)), invoke),
			)))
	default:
		return js.Do(js.MethodCall(find("."+b.Widget), b.Signal,
			js.Fn([]string{"ev"}, invoke)))
	}
}

// WindowClass is the client class name of a window
func WindowClass(id string) string {
	return "Window_" + id
}
