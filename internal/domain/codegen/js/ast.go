package js

// Node is any element of a generated script
type Node interface {
	node()
}

// Expr is an expression node
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmt()
}

// Literals

// String is a string literal; its value is escaped when printed
type String struct{ Value string }

// Number is a numeric literal
type Number struct{ Value float64 }

// Bool is a true/false literal
type Bool struct{ Value bool }

// Null is the null literal
type Null struct{}

// Ident is a bare identifier. Name must be a valid identifier.
type Ident struct{ Name string }

// Compound expressions

// Member is obj.name, printed as obj["name"] when name is not an identifier
type Member struct {
	Object Expr
	Name   string
}

// Index is obj[index]
type Index struct {
	Object Expr
	Index  Expr
}

// Call is callee(args...)
type Call struct {
	Callee Expr
	Args   []Expr
}

// New is new callee(args...)
type New struct {
	Callee Expr
	Args   []Expr
}

// Func is an anonymous function expression
type Func struct {
	Params []string
	Body   []Stmt
}

// Array is an array literal
type Array struct{ Elems []Expr }

// Property is one key of an object literal or class body
type Property struct {
	Key   string
	Value Expr
}

// Object is an object literal
type Object struct{ Props []Property }

// Cond is test ? then : els
type Cond struct {
	Test Expr
	Then Expr
	Else Expr
}

// Binary is left op right
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Statements

// Var declares one variable; Init may be nil
type Var struct {
	Name string
	Init Expr
}

// Assign is target = value;
type Assign struct {
	Target Expr
	Value  Expr
}

// If is if (test) { then }
type If struct {
	Test Expr
	Then []Stmt
}

// ExprStmt evaluates an expression for its effect
type ExprStmt struct{ X Expr }

func (*String) node() {}
func (*Number) node() {}
func (*Bool) node()   {}
func (*Null) node()   {}
func (*Ident) node()  {}
func (*Member) node() {}
func (*Index) node()  {}
func (*Call) node()   {}
func (*New) node()    {}
func (*Func) node()   {}
func (*Array) node()  {}
func (*Object) node() {}
func (*Cond) node()   {}
func (*Binary) node() {}

func (*String) expr() {}
func (*Number) expr() {}
func (*Bool) expr()   {}
func (*Null) expr()   {}
func (*Ident) expr()  {}
func (*Member) expr() {}
func (*Index) expr()  {}
func (*Call) expr()   {}
func (*New) expr()    {}
func (*Func) expr()   {}
func (*Array) expr()  {}
func (*Object) expr() {}
func (*Cond) expr()   {}
func (*Binary) expr() {}

func (*Var) node()      {}
func (*Assign) node()   {}
func (*If) node()       {}
func (*ExprStmt) node() {}

func (*Var) stmt()      {}
func (*Assign) stmt()   {}
func (*If) stmt()       {}
func (*ExprStmt) stmt() {}
