package kaleido

//go:generate go run ../cmd/ast_codegen ../kaleido

// Prototype is the name and the parameter names of a function. Parameter
// names are kept as written, duplicates included.
type Prototype struct {
	Name   string
	Params []string
}

func NewPrototype(name string, params []string) *Prototype {
	return &Prototype{name, params}
}

func (proto *Prototype) Arity() int {
	return len(proto.Params)
}

// Function is a prototype together with the single expression making up its
// body.
type Function struct {
	Proto *Prototype
	Body  Expr
}

func NewFunction(proto *Prototype, body Expr) *Function {
	return &Function{proto, body}
}
