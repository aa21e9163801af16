package codegen

import (
	"strings"
	"testing"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/lithammer/dedent"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPackage = PackageInfo{
	ClassName: "ApplicationTextpad",
	Title:     "Textpad",
	Icon:      "apps/editor.png",
	Mimes:     []string{"text/plain"},
}

func newWindow(id string, signals map[string]map[string]string) types.Window {
	return types.Window{
		ID:         id,
		Properties: map[string]interface{}{"type": "GtkWindow"},
		Signals:    signals,
	}
}

// code strips the leading newline dedent leaves behind
func code(s string) string {
	return strings.TrimPrefix(dedent.Dedent(s), "\n")
}

func TestNormalizeHandler(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MenuSave", "EventMenuSave"},
		{"EventMenuSave", "EventMenuSave"},
		{"CustomThing", "EventCustomThing"},
		{" Spaced ", "EventSpaced"},
		{"Eventful", "Eventful"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once := NormalizeHandler(tt.in)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, NormalizeHandler(once))
		})
	}
}

func TestSaveSnippetSelected(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{"SaveBtn": {"click": "MenuSave"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	fn, ok := wc.handler("EventMenuSave")
	require.True(t, ok)

	snippet, ok := LookupSnippet("EventMenuSave")
	require.True(t, ok)
	assert.Equal(t, snippet.Build(Env{Mimes: testPackage.Mimes, Widget: "SaveBtn"}), fn.Body[1:])

	want := code(`
		var self = this;
		var my_filename = (argv && argv["path"]) ? argv["path"] : null;
		var my_content = "";
		var my_mimes = ["text/plain"];
		var my_callback = function(fname) {};
		if (my_filename) {
		  this.app.defaultFileSave(my_filename, my_content, function(fname) {
		    my_callback(fname);
		  }, my_mimes, undefined, false);
		}
	`)
	assert.Equal(t, want, js.Print(fn.Body, 0))

	// Canned snippets still get the generic DOM binding
	assert.Equal(t, code(`
		el.find(".SaveBtn").click(function(ev) {
		  self.EventMenuSave(this, ev);
		});
	`), js.Print(wc.Create, 0))
}

func TestGenericFallback(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{"Foo": {"change": "CustomThing"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	assert.Equal(t, code(`
		el.find(".Foo").change(function(ev) {
		  self.EventCustomThing(this, ev);
		});
	`), js.Print(wc.Create, 0))

	fn, ok := wc.handler("EventCustomThing")
	require.True(t, ok)
	assert.Equal(t, "var self = this;\n", js.Print(fn.Body, 0))

	assert.Equal(t, []types.SignalBinding{{Widget: "Foo", Signal: "change", Handler: "EventCustomThing"}}, wc.Bindings)
}

func TestGenericFallbackOddNames(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{`Tree"View`: {"row-activated": "open-row"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	assert.Equal(t, code(`
		el.find(".Tree\"View")["row-activated"](function(ev) {
		  self["Eventopen-row"](this, ev);
		});
	`), js.Print(wc.Create, 0))
	assert.Contains(t, wc.ClassScript(), `"Eventopen-row" : function(el, ev) {`)
}

func TestCloseFamilySharesSnippet(t *testing.T) {
	names := []string{"MenuClose", "MenuQuit", "Close", "Quit"}
	want := "var self = this;\nthis.$element.find(\".ActionClose\").click();\n"

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			w := newWindow("main", map[string]map[string]string{"Btn": {"clicked": name}})
			wc := NewGenerator(nil).Window(testPackage, w, true)

			fn, ok := wc.handler(NormalizeHandler(name))
			require.True(t, ok)
			assert.Equal(t, want, js.Print(fn.Body, 0))

			snippet, _ := LookupSnippet(NormalizeHandler(name))
			assert.Equal(t, "close", snippet.Name)
		})
	}
}

func TestClipboardSnippets(t *testing.T) {
	actions := map[string]string{
		"MenuTextCopy":      "copy",
		"MenuTextPaste":     "paste",
		"MenuTextCut":       "cut",
		"MenuTextSelectAll": "select",
		"MenuTextDelete":    "delete",
	}

	for handler, action := range actions {
		t.Run(handler, func(t *testing.T) {
			w := newWindow("main", map[string]map[string]string{"Menu": {"activate": handler}})
			wc := NewGenerator(nil).Window(testPackage, w, true)

			fn, ok := wc.handler(NormalizeHandler(handler))
			require.True(t, ok)
			assert.Equal(t, "var self = this;\nthis.app._clipboard(\""+action+"\");\n", js.Print(fn.Body, 0))
		})
	}
}

func TestOpenSnippetIsPortedLiterally(t *testing.T) {
	snippet, ok := LookupSnippet(HandlerMenuOpen)
	require.True(t, ok)
	assert.True(t, snippet.NeedsReview)

	assert.Equal(t, code(`
		var my_mimes = ["text/plain", "text/*"];
		var my_callback = function(fname) {};
		var cur = (argv && argv["path"]) ? argv["path"] : null;
		this.app.defaultFileOpen(function(fname) {
		  my_callback(fname);
		}, mu_mimes, null, cur);
	`), js.Print(snippet.Build(Env{Mimes: []string{"text/plain", "text/*"}}), 0))
}

func TestSaveAsSnippet(t *testing.T) {
	snippet, ok := LookupSnippet(HandlerMenuSaveAs)
	require.True(t, ok)

	assert.Equal(t, code(`
		var my_filename = (argv && argv["path"]) ? argv["path"] : null;
		var my_content = "";
		var my_mimes = [];
		var my_callback = function(fname, fmime) {};
		this.app.defaultFileSave(my_filename, my_content, function(fname) {
		  my_callback(fname);
		}, my_mimes, undefined, true);
	`), js.Print(snippet.Build(Env{}), 0))
}

func TestFileSetChooser(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{"Chooser": {"file-set": "ChooseFile"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	fn, ok := wc.handler("EventChooseFile")
	require.True(t, ok)
	assert.Equal(t, code(`
		var self = this;
		var my_mimes = ["text/plain"];
		var my_path = self.$element.find(".Chooser input[type=text]").val();
		this.app.createFileDialog(function(fname) {
		  self.$element.find(".Chooser input[type=text]").val(fname);
		  self.$element.find(".Chooser input[type=hidden]").val(fname);
		}, my_mimes, "open", dirname(my_path));
	`), js.Print(fn.Body, 0))

	assert.Equal(t, code(`
		el.find(".Chooser button").click(function(ev) {
		  self.EventChooseFile(this, ev);
		});
	`), js.Print(wc.Create, 0))
}

func TestFileSetCannedWins(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{"Chooser": {"file-set": "MenuClose"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	fn, ok := wc.handler("EventMenuClose")
	require.True(t, ok)
	assert.Contains(t, js.Print(fn.Body, 0), "ActionClose")
	assert.Contains(t, js.Print(wc.Create, 0), `el.find(".Chooser button").click(`)
}

func TestInputActivateBinding(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{"Entry": {"input-activate": "Submit"}})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	assert.Equal(t, code(`
		el.find(".Entry").keypress(function(ev) {
		  var k = ev.keyCode || ev.which;
		  if (k == 13) {
		    self.EventSubmit(this, ev);
		  }
		});
	`), js.Print(wc.Create, 0))
}

func TestDuplicateHandlersOverwrite(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{
		"A": {"clicked": "Save"},
		"B": {"clicked": "EventSave", "focus": "Other"},
	})

	wc := NewGenerator(nil).Window(testPackage, w, true)

	keys := make([]string, 0, len(wc.Handlers))
	for _, h := range wc.Handlers {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, []string{"EventSave", "EventOther"}, keys)
	assert.Len(t, wc.Create, 3)
	assert.Len(t, wc.Bindings, 3)
}

func TestPropertyEmission(t *testing.T) {
	w := types.Window{
		ID: "main",
		Properties: map[string]interface{}{
			"type":      "GtkWindow",
			"width":     400.0,
			"height":    "300",
			"opacity":   " 0.5",
			"resizable": true,
			"modal":     false,
			"name":      "editor",
			"empty":     "",
			"zero":      "0",
			"title":     "Ignored",
			"icon":      "",
			"count":     int64(3),
		},
		Signals: map[string]map[string]string{},
	}

	wc := NewGenerator(nil).Window(testPackage, w, true)

	assert.Equal(t, code(`
		this._count = 3;
		this._empty = null;
		this._height = 300;
		this._icon = "apps/editor.png";
		this._modal = false;
		this._name = "editor";
		this._opacity = 0.5;
		this._resizable = true;
		this._title = LABELS.title;
		this._width = 400;
		this._zero = null;
	`), js.Print(wc.Init, 0))
}

func TestPropertyDefaultsAndKeys(t *testing.T) {
	w := types.Window{
		ID:         "main",
		Properties: map[string]interface{}{"type": "GtkWindow", "data-role": "x'y", "version": "1.2.3"},
		Signals:    map[string]map[string]string{},
	}

	wc := NewGenerator(nil).Window(testPackage, w, true)

	assert.Equal(t, code(`
		this["_data-role"] = "x'y";
		this._icon = "apps/editor.png";
		this._title = LABELS.title;
		this._version = "1.2.3";
	`), js.Print(wc.Init, 0))
}

func TestRootWindowUniqueness(t *testing.T) {
	windows := []types.Window{
		newWindow("main", map[string]map[string]string{}),
		newWindow("prefs", map[string]map[string]string{}),
		newWindow("about", map[string]map[string]string{}),
	}

	pc := NewGenerator(nil).Package(testPackage, windows)

	require.Len(t, pc.Windows, 3)
	roots := 0
	for _, w := range pc.Windows {
		if w.IsRoot {
			roots++
		}
	}
	assert.Equal(t, 1, roots)
	assert.True(t, pc.Windows[0].IsRoot)

	assert.Equal(t, "root_window", pc.RootWindow)
	assert.Equal(t, "var root_window = new Window_main(self);\n", js.Print(pc.Prepend, 0))
	assert.Equal(t, "root_window.show();\n", js.Print(pc.Append, 0))
	assert.NotContains(t, pc.PrependScript(), "Window_prefs")

	for _, w := range pc.Windows[1:] {
		script := w.InitScript() + w.ClassScript() + w.CreateScript()
		assert.NotContains(t, script, "root_window")
		assert.NotContains(t, script, ".show()")
	}
}

func TestPackageWithoutWindows(t *testing.T) {
	pc := NewGenerator(nil).Package(testPackage, nil)

	assert.Empty(t, pc.Windows)
	assert.Empty(t, pc.RootWindow)
	assert.Empty(t, pc.PrependScript())
	assert.Empty(t, pc.AppendScript())
	assert.Empty(t, pc.Markup())
}

func TestDialogFlagAndContent(t *testing.T) {
	w := newWindow("about", map[string]map[string]string{})
	w.Properties["type"] = "GtkAboutDialog"
	w.Content = "<div class=\"About\">\n    <p>It's \"fine\"</p>\n</div>"

	wc := NewGenerator(nil).Window(testPackage, w, false)

	assert.True(t, wc.IsDialog)
	assert.False(t, wc.IsRoot)
	assert.Equal(t, `<div class="About"> <p>It's "fine"</p> </div>`, wc.Content)
	assert.Equal(t, `"<div class=\"About\"> <p>It's \"fine\"<\/p> <\/div>"`, wc.ContentLiteral())
	assert.Equal(t, w.Content, wc.Raw)
}

func TestMarkupJoinsWindows(t *testing.T) {
	a := newWindow("a", map[string]map[string]string{})
	a.Content = "<div>A</div>"
	b := newWindow("b", map[string]map[string]string{})
	b.Content = "<div>\nB</div>"

	pc := NewGenerator(nil).Package(testPackage, []types.Window{a, b})

	assert.Equal(t, "<div>A</div>\n<div>\nB</div>", pc.Markup())
}

func TestGeneratorMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	w := newWindow("main", map[string]map[string]string{
		"Save":    {"clicked": "MenuSave"},
		"Chooser": {"file-set": "Pick"},
		"Foo":     {"change": "Bar"},
	})

	NewGenerator(nil).WithMetrics(metrics).Package(testPackage, []types.Window{w})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WindowsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsResolved.WithLabelValues(monitoring.PathCanned)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsResolved.WithLabelValues(monitoring.PathChooser)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsResolved.WithLabelValues(monitoring.PathGeneric)))
}

func TestGeneratorPolicy(t *testing.T) {
	w := newWindow("main", map[string]map[string]string{})
	w.Content = `<div class="Body"><script>alert(1)</script><input type="text" class="Foo"></div>`

	wc := NewGenerator(nil).WithPolicy(MarkupPolicy()).Window(testPackage, w, true)

	assert.NotContains(t, wc.Content, "script")
	assert.Contains(t, wc.Content, `class="Foo"`)
	assert.Contains(t, wc.Content, `class="Body"`)
	// Raw markup artifact is untouched
	assert.Contains(t, wc.Raw, "<script>")
}
