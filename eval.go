package arith

import (
	"strings"

	"github.com/rs/zerolog"
)

// Bindings maps variable names to their values.
type Bindings map[string]Value

// Context is a context for evaluating expressions. Its bindings persist
// across evaluations, so each assignment remains visible to later
// expressions. It is not safe to use a Context concurrently.
type Context struct {
	vars Bindings
	log  zerolog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt Bindings
	bindopt Bindings
	logopt  struct {
		log zerolog.Logger
	}
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (bindopt) ctxOption() {}
func (logopt) ctxOption()  {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val Value) ContextOption {
	return varopt{name, val}
}

// SetVars copies the values of any number of variables into the context.
func SetVars(vars Bindings) ContextOption {
	return varsopt(vars)
}

// Bind makes the context use vars as its bindings. Assignments made while
// evaluating are stored directly in vars. Options following Bind that set
// variables also write into vars.
func Bind(vars Bindings) ContextOption {
	return bindopt(vars)
}

// Logger sets a logger that receives a debug event for each assignment and
// each evaluated expression. The default discards everything.
func Logger(log zerolog.Logger) ContextOption {
	return logopt{log}
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{log: zerolog.Nop()}
	ctx.apply(opts)
	return &ctx
}

// Clone creates a copy of a context and applies options to it. The copy has
// its own bindings, initially the same as ctx's.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		vars: make(Bindings, len(ctx.vars)),
		log:  ctx.log,
	}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	n.apply(opts)
	return &n
}

func (ctx *Context) apply(opts []ContextOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case bindopt:
			if opt != nil {
				ctx.vars = Bindings(opt)
			}
		case varopt:
			ctx.binding()[opt.name] = opt.val
		case varsopt:
			b := ctx.binding()
			for k, v := range opt {
				b[k] = v
			}
		case logopt:
			ctx.log = opt.log
		default:
			panic("arith: unknown option type")
		}
	}
	ctx.binding()
}

// binding returns the context's bindings, creating them if needed.
func (ctx *Context) binding() Bindings {
	if ctx.vars == nil {
		ctx.vars = make(Bindings)
	}
	return ctx.vars
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, val Value) *Context {
	ctx.binding()[name] = val
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (Value, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Vars returns the context's bindings. The map is shared with the context.
func (ctx *Context) Vars() Bindings {
	return ctx.binding()
}

// Eval evaluates a program: zero or more assignments "name = expr", each
// followed by a semicolon, and then the expression whose value is the result.
// Assignments happen in order, each seeing those before it, and they remain
// in the context's bindings even if a later part of the program fails.
func (ctx *Context) Eval(src string) (Value, error) {
	segs := strings.Split(src, ";")
	last := len(segs) - 1
	for _, seg := range segs[:last] {
		name, rhs, ok := strings.Cut(seg, "=")
		if !ok {
			return Value{}, &Error{Kind: InvalidStructure}
		}
		if _, err := ctx.Assign(name, rhs); err != nil {
			return Value{}, err
		}
	}
	return ctx.expr(segs[last])
}

// Assign evaluates the single expression src and binds the result to name.
// Surrounding space in name is ignored. Rebinding a name replaces its value.
func (ctx *Context) Assign(name, src string) (Value, error) {
	name = strings.TrimSpace(name)
	if !IsName(name) {
		return Value{}, &Error{Kind: InvalidVariableName, Text: name}
	}
	v, err := ctx.expr(src)
	if err != nil {
		return Value{}, err
	}
	ctx.log.Debug().Str("name", name).Stringer("value", v).Msg("assign")
	ctx.binding()[name] = v
	return v, nil
}

// expr evaluates a single expression, with no assignments.
func (ctx *Context) expr(src string) (Value, error) {
	src = StripComments(src)
	if src == "" {
		return Value{}, &Error{Kind: EmptyExpression}
	}
	toks := tokenize(src)
	if err := ctx.substitute(toks); err != nil {
		return Value{}, err
	}
	v, err := reduce(toks)
	if err != nil {
		ctx.log.Debug().Str("expr", src).Err(err).Msg("eval")
		return Value{}, err
	}
	ctx.log.Debug().Str("expr", src).Stringer("value", v).Msg("eval")
	return v, nil
}

// substitute replaces each name in toks with a number holding its value.
func (ctx *Context) substitute(toks []lexToken) error {
	for i, tok := range toks {
		if tok.kind != tokenIdent {
			continue
		}
		v, ok := ctx.vars[tok.text]
		if !ok {
			return &Error{Kind: UndefinedVariable, Text: tok.text}
		}
		toks[i] = lexToken{text: tok.text, kind: tokenNum, pos: tok.pos, val: v}
	}
	return nil
}

// Eval is a shortcut to evaluate a program with vars as the bindings. New
// assignments are stored in vars. If vars is nil, they are discarded.
func Eval(src string, vars Bindings, opts ...ContextOption) (Value, error) {
	if vars != nil {
		opts = append([]ContextOption{Bind(vars)}, opts...)
	}
	return NewContext(opts...).Eval(src)
}
