package sheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/mathutil"
)

// Expr is a formula expression tree. Expressions are built once at report
// construction and never mutated; evaluation resolves references through
// the owning store.
type Expr interface {
	// eval computes the expression given a resolver for referenced cells.
	eval(get func(Address) Value) Value
	// walkRefs visits every cell reference in the tree.
	walkRefs(visit func(Address))
	// encode renders the expression in spreadsheet formula syntax, with
	// references resolved to coordinates by the caller.
	encode(ref func(Address) string) string
}

// numOf reads an operand numerically. Text operands count as zero, in line
// with the defensive arithmetic used throughout the report templates.
func numOf(v Value) float64 {
	if v.IsText {
		return 0
	}
	return v.Number
}

// finite collapses NaN and infinities to zero so a pathological input can
// never poison downstream cells.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

type litExpr struct{ v Value }

func (e litExpr) eval(func(Address) Value) Value { return e.v }
func (e litExpr) walkRefs(func(Address))         {}
func (e litExpr) encode(func(Address) string) string {
	if e.v.IsText {
		return `"` + strings.ReplaceAll(e.v.Text, `"`, `""`) + `"`
	}
	return strconv.FormatFloat(e.v.Number, 'f', -1, 64)
}

// Num is a numeric literal operand.
func Num(f float64) Expr { return litExpr{v: NumberValue(f)} }

// Str is a text literal operand.
func Str(s string) Expr { return litExpr{v: TextValue(s)} }

type refExpr struct{ addr Address }

func (e refExpr) eval(get func(Address) Value) Value     { return get(e.addr) }
func (e refExpr) walkRefs(visit func(Address))           { visit(e.addr) }
func (e refExpr) encode(ref func(Address) string) string { return ref(e.addr) }

// Ref references another cell by address.
func Ref(addr Address) Expr { return refExpr{addr: addr} }

// naryExpr covers the chainable arithmetic operators.
type naryExpr struct {
	op   string // "+", "-", "*", "/"
	args []Expr
}

func (e naryExpr) eval(get func(Address) Value) Value {
	acc := numOf(e.args[0].eval(get))
	for _, arg := range e.args[1:] {
		operand := numOf(arg.eval(get))
		switch e.op {
		case "+":
			acc += operand
		case "-":
			acc -= operand
		case "*":
			acc *= operand
		case "/":
			// Division by zero is a defined numeric result, not an error.
			acc = mathutil.SafeDivide(acc, operand)
		}
	}
	return NumberValue(finite(acc))
}

func (e naryExpr) walkRefs(visit func(Address)) {
	for _, arg := range e.args {
		arg.walkRefs(visit)
	}
}

func (e naryExpr) encode(ref func(Address) string) string {
	parts := make([]string, len(e.args))
	for i, arg := range e.args {
		parts[i] = arg.encode(ref)
	}
	return "(" + strings.Join(parts, e.op) + ")"
}

// Add sums its operands.
func Add(args ...Expr) Expr { return naryExpr{op: "+", args: args} }

// Sub subtracts b from a.
func Sub(a, b Expr) Expr { return naryExpr{op: "-", args: []Expr{a, b}} }

// Mul multiplies its operands.
func Mul(args ...Expr) Expr { return naryExpr{op: "*", args: args} }

// Div divides a by b; a zero denominator yields 0.
func Div(a, b Expr) Expr { return naryExpr{op: "/", args: []Expr{a, b}} }

type cmpExpr struct {
	op   string // "=", "<"
	a, b Expr
}

func (e cmpExpr) eval(get func(Address) Value) Value {
	av, bv := e.a.eval(get), e.b.eval(get)
	var truth bool
	switch e.op {
	case "=":
		if av.IsText || bv.IsText {
			truth = av.IsText == bv.IsText && av.Text == bv.Text
		} else {
			truth = av.Number == bv.Number
		}
	case "<":
		truth = numOf(av) < numOf(bv)
	}
	if truth {
		return NumberValue(1)
	}
	return NumberValue(0)
}

func (e cmpExpr) walkRefs(visit func(Address)) {
	e.a.walkRefs(visit)
	e.b.walkRefs(visit)
}

func (e cmpExpr) encode(ref func(Address) string) string {
	return e.a.encode(ref) + e.op + e.b.encode(ref)
}

// Eq compares two operands for equality, yielding 1 or 0. It backs the
// IF(x=0, 0, ...) guards on every ratio metric.
func Eq(a, b Expr) Expr { return cmpExpr{op: "=", a: a, b: b} }

// Lt compares a < b, yielding 1 or 0.
func Lt(a, b Expr) Expr { return cmpExpr{op: "<", a: a, b: b} }

type ifExpr struct {
	cond, then, els Expr
}

func (e ifExpr) eval(get func(Address) Value) Value {
	// Short-circuit: only the selected branch is evaluated.
	if numOf(e.cond.eval(get)) != 0 {
		return e.then.eval(get)
	}
	return e.els.eval(get)
}

func (e ifExpr) walkRefs(visit func(Address)) {
	e.cond.walkRefs(visit)
	e.then.walkRefs(visit)
	e.els.walkRefs(visit)
}

func (e ifExpr) encode(ref func(Address) string) string {
	return "IF(" + e.cond.encode(ref) + "," + e.then.encode(ref) + "," + e.els.encode(ref) + ")"
}

// If evaluates then when cond is non-zero, otherwise els.
func If(cond, then, els Expr) Expr { return ifExpr{cond: cond, then: then, els: els} }

type truncExpr struct{ x Expr }

func (e truncExpr) eval(get func(Address) Value) Value {
	return NumberValue(mathutil.TruncateInt(numOf(e.x.eval(get))))
}

func (e truncExpr) walkRefs(visit func(Address)) { e.x.walkRefs(visit) }

func (e truncExpr) encode(ref func(Address) string) string {
	return "INT(" + e.x.encode(ref) + ")"
}

// Trunc truncates toward zero, the spreadsheet INT of a non-negative count.
func Trunc(x Expr) Expr { return truncExpr{x: x} }

type minExpr struct{ args []Expr }

func (e minExpr) eval(get func(Address) Value) Value {
	best := numOf(e.args[0].eval(get))
	for _, arg := range e.args[1:] {
		best = mathutil.Min(best, numOf(arg.eval(get)))
	}
	return NumberValue(best)
}

func (e minExpr) walkRefs(visit func(Address)) {
	for _, arg := range e.args {
		arg.walkRefs(visit)
	}
}

func (e minExpr) encode(ref func(Address) string) string {
	parts := make([]string, len(e.args))
	for i, arg := range e.args {
		parts[i] = arg.encode(ref)
	}
	return "MIN(" + strings.Join(parts, ",") + ")"
}

// Min takes the smallest operand; the growth projection caps its fill rate
// with it.
func Min(args ...Expr) Expr { return minExpr{args: args} }

type powExpr struct{ base, exp Expr }

func (e powExpr) eval(get func(Address) Value) Value {
	return NumberValue(finite(math.Pow(numOf(e.base.eval(get)), numOf(e.exp.eval(get)))))
}

func (e powExpr) walkRefs(visit func(Address)) {
	e.base.walkRefs(visit)
	e.exp.walkRefs(visit)
}

func (e powExpr) encode(ref func(Address) string) string {
	return "POWER(" + e.base.encode(ref) + "," + e.exp.encode(ref) + ")"
}

// Pow raises base to exp; annualized return uses it.
func Pow(base, exp Expr) Expr { return powExpr{base: base, exp: exp} }

// EncodeFormula renders e in spreadsheet formula syntax, without the leading
// "=". The ref callback maps each cell address to its rendered location.
func EncodeFormula(e Expr, ref func(Address) string) string {
	return e.encode(ref)
}
