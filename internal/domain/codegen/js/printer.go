package js

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IndentUnit is one level of indentation in printed scripts
const IndentUnit = "  "

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether name can be printed as a bare identifier
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Quote returns s as a double-quoted script string literal. It is the only
// escaping routine used for generated code.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\ufffd`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '/' && i > 0 && s[i-1] == '<':
			// Keeps "</script>" inert when the module is inlined
			b.WriteString(`\/`)
		case r < 0x20 || r == 0x7f || r == 0x2028 || r == 0x2029:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// FormatNumber prints a float the way a script literal expects
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Print renders statements one per line at the given depth
func Print(stmts []Stmt, depth int) string {
	p := &printer{}
	for _, s := range stmts {
		p.stmt(s, depth)
	}
	return p.b.String()
}

// PrintExpr renders a single expression at depth zero
func PrintExpr(e Expr) string {
	p := &printer{}
	p.expr(e, 0)
	return p.b.String()
}

// PrintProperties renders the members of an object body, one per line,
// each followed by a comma
func PrintProperties(props []Property, depth int) string {
	p := &printer{}
	for _, prop := range props {
		p.indent(depth)
		p.key(prop.Key)
		p.b.WriteString(" : ")
		p.expr(prop.Value, depth)
		p.b.WriteString(",\n")
	}
	return p.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.b.WriteString(IndentUnit)
	}
}

func (p *printer) key(k string) {
	if IsIdentifier(k) {
		p.b.WriteString(k)
		return
	}
	p.b.WriteString(Quote(k))
}

func (p *printer) block(stmts []Stmt, depth int) {
	if len(stmts) == 0 {
		p.b.WriteString("{}")
		return
	}
	p.b.WriteString("{\n")
	for _, s := range stmts {
		p.stmt(s, depth+1)
	}
	p.indent(depth)
	p.b.WriteString("}")
}

func (p *printer) stmt(s Stmt, depth int) {
	p.indent(depth)
	switch n := s.(type) {
	case *Var:
		p.b.WriteString("var ")
		p.b.WriteString(n.Name)
		if n.Init != nil {
			p.b.WriteString(" = ")
			p.expr(n.Init, depth)
		}
		p.b.WriteString(";")
	case *Assign:
		p.expr(n.Target, depth)
		p.b.WriteString(" = ")
		p.expr(n.Value, depth)
		p.b.WriteString(";")
	case *If:
		p.b.WriteString("if (")
		p.expr(n.Test, depth)
		p.b.WriteString(") ")
		p.block(n.Then, depth)
	case *ExprStmt:
		p.expr(n.X, depth)
		p.b.WriteString(";")
	default:
		panic(fmt.Sprintf("js: unknown statement %T", s))
	}
	p.b.WriteString("\n")
}

func (p *printer) args(args []Expr, depth int) {
	p.b.WriteString("(")
	for i, a := range args {
		if i > 0 {
			p.b.WriteString(", ")
		}
		p.expr(a, depth)
	}
	p.b.WriteString(")")
}

// operand wraps expressions that would bind looser than their context
func (p *printer) operand(e Expr, depth int) {
	switch e.(type) {
	case *Binary, *Cond, *Func, *New:
		p.b.WriteString("(")
		p.expr(e, depth)
		p.b.WriteString(")")
	default:
		p.expr(e, depth)
	}
}

func (p *printer) expr(e Expr, depth int) {
	switch n := e.(type) {
	case *String:
		p.b.WriteString(Quote(n.Value))
	case *Number:
		if n.Value < 0 {
			// Negative literals are unary minus expressions
			p.b.WriteString("(" + FormatNumber(n.Value) + ")")
		} else {
			p.b.WriteString(FormatNumber(n.Value))
		}
	case *Bool:
		p.b.WriteString(strconv.FormatBool(n.Value))
	case *Null:
		p.b.WriteString("null")
	case *Ident:
		p.b.WriteString(n.Name)
	case *Member:
		p.operand(n.Object, depth)
		if IsIdentifier(n.Name) {
			p.b.WriteString(".")
			p.b.WriteString(n.Name)
		} else {
			p.b.WriteString("[" + Quote(n.Name) + "]")
		}
	case *Index:
		p.operand(n.Object, depth)
		p.b.WriteString("[")
		p.expr(n.Index, depth)
		p.b.WriteString("]")
	case *Call:
		p.operand(n.Callee, depth)
		p.args(n.Args, depth)
	case *New:
		p.b.WriteString("new ")
		p.operand(n.Callee, depth)
		p.args(n.Args, depth)
	case *Func:
		p.b.WriteString("function(")
		p.b.WriteString(strings.Join(n.Params, ", "))
		p.b.WriteString(") ")
		p.block(n.Body, depth)
	case *Array:
		p.b.WriteString("[")
		for i, el := range n.Elems {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.expr(el, depth)
		}
		p.b.WriteString("]")
	case *Object:
		if len(n.Props) == 0 {
			p.b.WriteString("{}")
			return
		}
		p.b.WriteString("{")
		for i, prop := range n.Props {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.key(prop.Key)
			p.b.WriteString(": ")
			p.expr(prop.Value, depth)
		}
		p.b.WriteString("}")
	case *Cond:
		p.operand(n.Test, depth)
		p.b.WriteString(" ? ")
		p.operand(n.Then, depth)
		p.b.WriteString(" : ")
		p.operand(n.Else, depth)
	case *Binary:
		p.operand(n.Left, depth)
		p.b.WriteString(" " + n.Op + " ")
		p.operand(n.Right, depth)
	default:
		panic(fmt.Sprintf("js: unknown expression %T", e))
	}
}
