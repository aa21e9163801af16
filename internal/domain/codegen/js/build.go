package js

// Constructors keep generator code close to the script it produces.

func Str(s string) *String     { return &String{Value: s} }
func Num(f float64) *Number    { return &Number{Value: f} }
func Boolean(b bool) *Bool     { return &Bool{Value: b} }
func NullLit() *Null           { return &Null{} }
func Id(name string) *Ident    { return &Ident{Name: name} }
func This() *Ident             { return &Ident{Name: "this"} }
func Undefined() *Ident        { return &Ident{Name: "undefined"} }
func Arr(elems ...Expr) *Array { return &Array{Elems: elems} }

// Dot builds a member chain: Dot(x, "a", "b") is x.a.b
func Dot(obj Expr, names ...string) Expr {
	for _, name := range names {
		obj = &Member{Object: obj, Name: name}
	}
	return obj
}

// At is obj[key] with a string key
func At(obj Expr, key string) *Index {
	return &Index{Object: obj, Index: Str(key)}
}

// CallOf is callee(args...)
func CallOf(callee Expr, args ...Expr) *Call {
	return &Call{Callee: callee, Args: args}
}

// MethodCall is obj.name(args...)
func MethodCall(obj Expr, name string, args ...Expr) *Call {
	return &Call{Callee: &Member{Object: obj, Name: name}, Args: args}
}

// NewOf is new callee(args...)
func NewOf(callee Expr, args ...Expr) *New {
	return &New{Callee: callee, Args: args}
}

// Fn is function(params...) { body }
func Fn(params []string, body ...Stmt) *Func {
	return &Func{Params: params, Body: body}
}

// Op is left op right
func Op(left Expr, op string, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Ternary is test ? then : els
func Ternary(test, then, els Expr) *Cond {
	return &Cond{Test: test, Then: then, Else: els}
}

// Let declares a variable
func Let(name string, init Expr) *Var {
	return &Var{Name: name, Init: init}
}

// Set is target = value;
func Set(target, value Expr) *Assign {
	return &Assign{Target: target, Value: value}
}

// When is if (test) { then }
func When(test Expr, then ...Stmt) *If {
	return &If{Test: test, Then: then}
}

// Do wraps an expression as a statement
func Do(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}

// Obj builds an object literal from key/value properties
func Obj(props ...Property) *Object {
	return &Object{Props: props}
}

// Prop is one object literal property
func Prop(key string, value Expr) Property {
	return Property{Key: key, Value: value}
}

// Strings converts a string list to an array literal
func Strings(values []string) *Array {
	elems := make([]Expr, 0, len(values))
	for _, v := range values {
		elems = append(elems, Str(v))
	}
	return &Array{Elems: elems}
}
