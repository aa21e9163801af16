package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/sandbox"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	out := Render("%CLASSNAME%/%CLASSNAME%.js", Values{TokenClassName: "ApplicationTextpad"})

	assert.Equal(t, "ApplicationTextpad/ApplicationTextpad.js", out)
}

func TestRenderUnknownTokensUntouched(t *testing.T) {
	out := Render("%CLASSNAME% %NOT_A_TOKEN% 100%", Values{TokenClassName: "X"})

	assert.Equal(t, "X %NOT_A_TOKEN% 100%", out)
}

func TestRenderMissingValuesAreEmpty(t *testing.T) {
	out := Render("[%TIMESTAMP%][%ROOT_WINDOW%]", Values{})

	assert.Equal(t, "[][]", out)
}

func TestRenderSinglePass(t *testing.T) {
	values := Values{
		TokenClassName:   "%TIMESTAMP%",
		TokenTimestamp:   "2024-01-01",
		TokenPackageType: "%PACKAGETYPE%",
	}

	out := Render("%CLASSNAME% %TIMESTAMP% %PACKAGETYPE%", values)

	assert.Equal(t, "%TIMESTAMP% 2024-01-01 %PACKAGETYPE%", out)
}

func TestRenderOrderIndependent(t *testing.T) {
	values := Values{TokenCodeInit: "a", TokenCodeClass: "b", TokenCodeCreate: "c"}

	assert.Equal(t, "c b a", Render("%CODE_CREATE% %CODE_CLASS% %CODE_INIT%", values))
}

func TestDefaultTemplates(t *testing.T) {
	set, err := DefaultTemplates()
	require.NoError(t, err)

	for name, tpl := range map[string]string{
		"stylesheet":   set.Stylesheet,
		"backend stub": set.BackendStub,
		"application":  set.Application,
		"panel item":   set.PanelItem,
		"service":      set.Service,
		"window":       set.Window,
	} {
		assert.NotEmpty(t, tpl, name)
	}

	assert.Contains(t, set.Application, string(TokenCodeWindows))
	assert.Contains(t, set.Application, string(TokenCodePrepend))
	assert.Contains(t, set.Application, string(TokenCodeAppend))
	assert.Contains(t, set.Window, string(TokenCodeCreate))
	assert.Contains(t, set.BackendStub, string(TokenTimestamp))
}

func TestClientTemplateByKind(t *testing.T) {
	set, err := DefaultTemplates()
	require.NoError(t, err)

	tests := []struct {
		kind types.PackageKind
		want string
	}{
		{types.KindApplication, set.Application},
		{types.KindSystem, set.Application},
		{types.KindPanelItem, set.PanelItem},
		{types.KindService, set.Service},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := set.Client(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = set.Client("Widget")
	assert.Error(t, err)
}

func TestRenderedClientModulesParse(t *testing.T) {
	set, err := DefaultTemplates()
	require.NoError(t, err)
	r := NewRenderer(set)
	checker := sandbox.New(sandbox.DefaultConfig())

	window := r.Window(Values{
		TokenWindowName: "main",
		TokenIsDialog:   "false",
		TokenContent:    `"<div></div>"`,
		TokenCodeInit:   "        this._title = LABELS.title;\n",
	})

	values := Values{
		TokenPackageType:     "Application",
		TokenClassName:       "ApplicationTextpad",
		TokenTimestamp:       "2024-01-01",
		TokenCompatibility:   `["gtk"]`,
		TokenLinguas:         `{en_US: {title: "Textpad"}}`,
		TokenDefaultLanguage: `"en_US"`,
		TokenCodeWindows:     window,
		TokenCodePrepend:     "        var root_window = new Window_main(self);\n",
		TokenCodeAppend:      "        root_window.show();\n",
		TokenRootWindow:      "root_window",
	}

	for _, kind := range []types.PackageKind{types.KindApplication, types.KindPanelItem, types.KindService} {
		t.Run(string(kind), func(t *testing.T) {
			src, err := r.Client(kind, values)
			require.NoError(t, err)
			assert.NotContains(t, src, "%CLASSNAME%")
			assert.NoError(t, checker.CheckSyntax(string(kind)+".js", src))
		})
	}

	// A package without windows still renders valid code
	src, err := r.Client(types.KindApplication, Values{
		TokenClassName:       "ApplicationEmpty",
		TokenLinguas:         "{}",
		TokenDefaultLanguage: `"en_US"`,
		TokenCompatibility:   "[]",
	})
	require.NoError(t, err)
	assert.NoError(t, checker.CheckSyntax("empty.js", src))
}

func TestLoadTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		FileStylesheet:  "css %CLASSNAME%",
		FileBackendStub: "php %CLASSNAME%",
		FileApplication: "app %CLASSNAME%",
		FilePanelItem:   "pi %CLASSNAME%",
		FileService:     "svc %CLASSNAME%",
		FileWindow:      "win %WINDOW_NAME%",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	set, err := LoadTemplatesDir(dir)
	require.NoError(t, err)

	r := NewRenderer(set)
	assert.Equal(t, "css X", r.Stylesheet(Values{TokenClassName: "X"}))
	assert.Equal(t, "php X", r.BackendStub(Values{TokenClassName: "X"}))
	assert.Equal(t, "win main", r.Window(Values{TokenWindowName: "main"}))
	assert.Same(t, set, r.templates)
}

func TestLoadTemplatesDirErrors(t *testing.T) {
	_, err := LoadTemplatesDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	// Incomplete directory
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileStylesheet), []byte("x"), 0o644))
	_, err = LoadTemplatesDir(dir)
	assert.Error(t, err)

	file := filepath.Join(dir, FileStylesheet)
	_, err = LoadTemplatesDir(file)
	assert.Error(t, err)
}
