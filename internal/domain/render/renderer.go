package render

import (
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// Token is a placeholder recognized in template text
type Token string

const (
	TokenPackageType     Token = "%PACKAGETYPE%"
	TokenClassName       Token = "%CLASSNAME%"
	TokenTimestamp       Token = "%TIMESTAMP%"
	TokenCompatibility   Token = "%COMPABILITY%"
	TokenLinguas         Token = "%LINGUAS%"
	TokenDefaultLanguage Token = "%DEFAULT_LANGUAGE%"
	TokenCodeWindows     Token = "%CODE_GLADE%"
	TokenCodePrepend     Token = "%CODE_PREPEND%"
	TokenCodeAppend      Token = "%CODE_APPEND%"
	TokenRootWindow      Token = "%ROOT_WINDOW%"
	TokenWindowName      Token = "%WINDOW_NAME%"
	TokenIsDialog        Token = "%IS_DIALOG%"
	TokenContent         Token = "%CONTENT%"
	TokenCodeInit        Token = "%CODE_INIT%"
	TokenCodeClass       Token = "%CODE_CLASS%"
	TokenCodeCreate      Token = "%CODE_CREATE%"
)

// Tokens lists every recognized token
func Tokens() []Token {
	return []Token{
		TokenPackageType, TokenClassName, TokenTimestamp, TokenCompatibility,
		TokenLinguas, TokenDefaultLanguage, TokenCodeWindows, TokenCodePrepend,
		TokenCodeAppend, TokenRootWindow, TokenWindowName, TokenIsDialog,
		TokenContent, TokenCodeInit, TokenCodeClass, TokenCodeCreate,
	}
}

// Values maps tokens to their replacement text
type Values map[Token]string

// Renderer substitutes values into a TemplateSet
type Renderer struct {
	templates *TemplateSet
}

// NewRenderer creates a renderer over an immutable template set
func NewRenderer(templates *TemplateSet) *Renderer {
	return &Renderer{templates: templates}
}

// Render replaces every recognized token in one pass. Recognized tokens
// without a value become empty; unrecognized text is left alone, and
// replacement text is never scanned again.
func Render(template string, values Values) string {
	tokens := Tokens()
	pairs := make([]string, 0, len(tokens)*2)
	for _, t := range tokens {
		pairs = append(pairs, string(t), values[t])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Stylesheet renders the stylesheet artifact
func (r *Renderer) Stylesheet(values Values) string {
	return Render(r.templates.Stylesheet, values)
}

// BackendStub renders the backend stub artifact
func (r *Renderer) BackendStub(values Values) string {
	return Render(r.templates.BackendStub, values)
}

// Window renders one window class
func (r *Renderer) Window(values Values) string {
	return Render(r.templates.Window, values)
}

// Client renders the client module for a package kind
func (r *Renderer) Client(kind types.PackageKind, values Values) (string, error) {
	tpl, err := r.templates.Client(kind)
	if err != nil {
		return "", err
	}
	return Render(tpl, values), nil
}
