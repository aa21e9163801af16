package codegen

import "github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"

// Env is what a snippet may draw on besides fixed code
type Env struct {
	Mimes  []string // package MIME types
	Widget string   // widget raising the signal
}

// Snippet is a fixed handler body selected by normalized handler name
type Snippet struct {
	Name string

	// NeedsReview marks bodies ported literally whose runtime behavior is
	// unconfirmed. The generator warns whenever one is emitted.
	NeedsReview bool

	Build func(env Env) []js.Stmt
}

// Canned handler names
const (
	HandlerMenuOpen          = "EventMenuOpen"
	HandlerMenuSave          = "EventMenuSave"
	HandlerMenuSaveAs        = "EventMenuSaveAs"
	HandlerMenuClose         = "EventMenuClose"
	HandlerMenuQuit          = "EventMenuQuit"
	HandlerClose             = "EventClose"
	HandlerQuit              = "EventQuit"
	HandlerMenuTextCopy      = "EventMenuTextCopy"
	HandlerMenuTextPaste     = "EventMenuTextPaste"
	HandlerMenuTextCut       = "EventMenuTextCut"
	HandlerMenuTextSelectAll = "EventMenuTextSelectAll"
	HandlerMenuTextDelete    = "EventMenuTextDelete"
)

var cannedSnippets = map[string]Snippet{
	HandlerMenuOpen: {
		Name: "open-file",
		// Passes mu_mimes, which is never declared, to defaultFileOpen
		NeedsReview: true,
		Build:       openFile,
	},
	HandlerMenuSave:          {Name: "save-file", Build: saveFile},
	HandlerMenuSaveAs:        {Name: "save-file-as", Build: saveFileAs},
	HandlerMenuClose:         {Name: "close", Build: closeWindow},
	HandlerMenuQuit:          {Name: "close", Build: closeWindow},
	HandlerClose:             {Name: "close", Build: closeWindow},
	HandlerQuit:              {Name: "close", Build: closeWindow},
	HandlerMenuTextCopy:      {Name: "clipboard-copy", Build: clipboard("copy")},
	HandlerMenuTextPaste:     {Name: "clipboard-paste", Build: clipboard("paste")},
	HandlerMenuTextCut:       {Name: "clipboard-cut", Build: clipboard("cut")},
	HandlerMenuTextSelectAll: {Name: "clipboard-select-all", Build: clipboard("select")},
	HandlerMenuTextDelete:    {Name: "clipboard-delete", Build: clipboard("delete")},
}

// LookupSnippet returns the canned snippet for a normalized handler name
func LookupSnippet(handler string) (Snippet, bool) {
	s, ok := cannedSnippets[handler]
	return s, ok
}

// FileChooser is the body bound to file-set signals with no canned match
var FileChooser = Snippet{Name: "file-chooser", Build: fileChooser}

func app() js.Expr {
	return js.Dot(js.This(), "app")
}

// argvPath is (argv && argv["path"]) ? argv["path"] : null
func argvPath() js.Expr {
	return js.Ternary(
		js.Op(js.Id("argv"), "&&", js.At(js.Id("argv"), "path")),
		js.At(js.Id("argv"), "path"),
		js.NullLit(),
	)
}

// forward is function(fname) { my_callback(fname); }
func forward() js.Expr {
	return js.Fn([]string{"fname"}, js.Do(js.CallOf(js.Id("my_callback"), js.Id("fname"))))
}

func openFile(env Env) []js.Stmt {
	return []js.Stmt{
		js.Let("my_mimes", js.Strings(env.Mimes)),
		js.Let("my_callback", js.Fn([]string{"fname"})),
		js.Let("cur", argvPath()),
		js.Do(js.MethodCall(app(), "defaultFileOpen",
			forward(), js.Id("mu_mimes"), js.NullLit(), js.Id("cur"))),
	}
}

func saveFile(env Env) []js.Stmt {
	return []js.Stmt{
		js.Let("my_filename", argvPath()),
		js.Let("my_content", js.Str("")),
		js.Let("my_mimes", js.Strings(env.Mimes)),
		js.Let("my_callback", js.Fn([]string{"fname"})),
		js.When(js.Id("my_filename"),
			js.Do(js.MethodCall(app(), "defaultFileSave",
				js.Id("my_filename"), js.Id("my_content"), forward(),
				js.Id("my_mimes"), js.Undefined(), js.Boolean(false))),
		),
	}
}

func saveFileAs(env Env) []js.Stmt {
	return []js.Stmt{
		js.Let("my_filename", argvPath()),
		js.Let("my_content", js.Str("")),
		js.Let("my_mimes", js.Strings(env.Mimes)),
		js.Let("my_callback", js.Fn([]string{"fname", "fmime"})),
		js.Do(js.MethodCall(app(), "defaultFileSave",
			js.Id("my_filename"), js.Id("my_content"), forward(),
			js.Id("my_mimes"), js.Undefined(), js.Boolean(true))),
	}
}

func closeWindow(Env) []js.Stmt {
	find := js.MethodCall(js.Dot(js.This(), "$element"), "find", js.Str(".ActionClose"))
	return []js.Stmt{js.Do(js.MethodCall(find, "click"))}
}

func clipboard(action string) func(Env) []js.Stmt {
	return func(Env) []js.Stmt {
		return []js.Stmt{js.Do(js.MethodCall(app(), "_clipboard", js.Str(action)))}
	}
}

func fileChooser(env Env) []js.Stmt {
	field := func(kind string) js.Expr {
		return js.MethodCall(js.Dot(js.Id("self"), "$element"), "find",
			js.Str("."+env.Widget+" input[type="+kind+"]"))
	}
	return []js.Stmt{
		js.Let("my_mimes", js.Strings(env.Mimes)),
		js.Let("my_path", js.MethodCall(field("text"), "val")),
		js.Do(js.MethodCall(app(), "createFileDialog",
			js.Fn([]string{"fname"},
				js.Do(js.MethodCall(field("text"), "val", js.Id("fname"))),
				js.Do(js.MethodCall(field("hidden"), "val", js.Id("fname"))),
			),
			js.Id("my_mimes"), js.Str("open"),
			js.CallOf(js.Id("dirname"), js.Id("my_path")),
		)),
	}
}
