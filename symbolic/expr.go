// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package symbolic

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// Op identifies the shape of an Expr node.
type Op int

const (
	OpConst Op = iota // rational constant
	OpVar             // free variable
	OpAdd             // n-ary sum, canonically flattened and sorted
	OpMul             // n-ary product, canonically flattened and sorted
	OpDiv             // binary quotient Args[0] / Args[1]
	OpPow             // binary power Args[0] ^ Args[1]
	OpFunc            // named unary function (sin, cos, exp, ...) over Args[0]
)

// Expr is a canonical algebraic expression: a rational constant, a free
// variable, or a composition of the two under addition, multiplication,
// division, power, and a fixed set of named unary functions. Values are
// immutable once returned by a constructor or by Simplify.
type Expr struct {
	Op   Op
	Val  *big.Rat
	Name string
	Args []*Expr
}

// ---------------------------------------------------------------------------
// Constructors

// Const wraps a rational constant.
func Const(v *big.Rat) *Expr {
	return &Expr{Op: OpConst, Val: new(big.Rat).Set(v)}
}

// ConstInt wraps an integer constant.
func ConstInt(n int64) *Expr {
	return Const(big.NewRat(n, 1))
}

// Zero is the additive identity.
func Zero() *Expr { return ConstInt(0) }

// One is the multiplicative identity.
func One() *Expr { return ConstInt(1) }

// Var returns a free variable reference.
func Var(name string) *Expr {
	return &Expr{Op: OpVar, Name: name}
}

// Add returns the simplified sum of es; a single argument is returned
// as is.
func Add(es ...*Expr) *Expr {
	if len(es) == 1 {
		return es[0]
	}
	return (&Expr{Op: OpAdd, Args: es}).Simplify()
}

// Sub returns a - b.
func Sub(a, b *Expr) *Expr {
	return Add(a, Mul(ConstInt(-1), b))
}

// Neg returns -a.
func Neg(a *Expr) *Expr {
	return Mul(ConstInt(-1), a)
}

// Pos returns a unchanged; kept as a named constructor to mirror the unary
// operator set in the engine (a leaf-wise no-op).
func Pos(a *Expr) *Expr {
	return a.Simplify()
}

// Mul returns the simplified product of es; a single argument is
// returned as is.
func Mul(es ...*Expr) *Expr {
	if len(es) == 1 {
		return es[0]
	}
	return (&Expr{Op: OpMul, Args: es}).Simplify()
}

// Div returns a / b. Callers that must reject division by the literal zero
// constant should check b.AsConstant() before calling Div; Div itself
// stays symbolic when b is not a constant.
func Div(a, b *Expr) *Expr {
	return (&Expr{Op: OpDiv, Args: []*Expr{a, b}}).Simplify()
}

// Pow returns a ^ e.
func Pow(a, e *Expr) *Expr {
	return (&Expr{Op: OpPow, Args: []*Expr{a, e}}).Simplify()
}

// Func1 constructs an application of one of the named unary functions
// recognized by Eval: sin, cos, tan, sinh, cosh, tanh, exp, log, log2,
// log10, log1p, floor, ceil, sqrt.
func Func1(name string, a *Expr) *Expr {
	return (&Expr{Op: OpFunc, Name: name, Args: []*Expr{a}}).Simplify()
}

// ---------------------------------------------------------------------------
// Canonicalization

// Simplify rebuilds e in canonical form: nested sums/products are
// flattened, constants are folded, zero/one identities are removed, and
// sibling operands are sorted by their own canonical String so that
// algebraically-equal expressions produce structurally identical trees.
func (e *Expr) Simplify() *Expr {
	switch e.Op {
	case OpConst:
		return Const(e.Val)
	case OpVar:
		return &Expr{Op: OpVar, Name: e.Name}
	case OpAdd:
		return simplifyAdd(e.Args)
	case OpMul:
		return simplifyMul(e.Args)
	case OpDiv:
		return simplifyDiv(e.Args[0].Simplify(), e.Args[1].Simplify())
	case OpPow:
		return simplifyPow(e.Args[0].Simplify(), e.Args[1].Simplify())
	case OpFunc:
		return simplifyFunc(e.Name, e.Args[0].Simplify())
	default:
		panic(fmt.Sprintf("symbolic: unknown op %d", e.Op))
	}
}

func simplifyAdd(args []*Expr) *Expr {
	var flat []*Expr
	for _, a := range args {
		a = a.Simplify()
		if a.Op == OpAdd {
			flat = append(flat, a.Args...)
		} else {
			flat = append(flat, a)
		}
	}
	// combine constants and like monomials (same non-constant factor set)
	constant := new(big.Rat)
	terms := map[string]*big.Rat{}
	shapes := map[string]*Expr{}
	var order []string
	for _, a := range flat {
		if a.Op == OpConst {
			constant.Add(constant, a.Val)
			continue
		}
		coeff, rest := splitCoeff(a)
		key := rest.String()
		if c, ok := terms[key]; ok {
			c.Add(c, coeff)
		} else {
			terms[key] = new(big.Rat).Set(coeff)
			shapes[key] = rest
			order = append(order, key)
		}
	}
	sort.Strings(order)
	var out []*Expr
	if constant.Sign() != 0 {
		out = append(out, Const(constant))
	}
	for _, key := range order {
		c := terms[key]
		if c.Sign() == 0 {
			continue
		}
		out = append(out, remerge(c, shapes[key]))
	}
	if len(out) == 0 {
		return Zero()
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Expr{Op: OpAdd, Args: out}
}

// splitCoeff peels the constant rational factor off a (simplified)
// multiplicative term, returning the coefficient and the remaining
// non-constant factor (One() if the term was itself a bare constant).
func splitCoeff(e *Expr) (*big.Rat, *Expr) {
	if e.Op != OpMul {
		if e.Op == OpConst {
			return new(big.Rat).Set(e.Val), One()
		}
		return big.NewRat(1, 1), e
	}
	coeff := big.NewRat(1, 1)
	var rest []*Expr
	for _, a := range e.Args {
		if a.Op == OpConst {
			coeff.Mul(coeff, a.Val)
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) == 0 {
		return coeff, One()
	}
	if len(rest) == 1 {
		return coeff, rest[0]
	}
	return coeff, &Expr{Op: OpMul, Args: rest}
}

func remerge(coeff *big.Rat, rest *Expr) *Expr {
	if rest.Op == OpConst {
		return Const(new(big.Rat).Mul(coeff, rest.Val))
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return rest
	}
	return &Expr{Op: OpMul, Args: []*Expr{Const(coeff), rest}}
}

func simplifyMul(args []*Expr) *Expr {
	var flat []*Expr
	for _, a := range args {
		a = a.Simplify()
		if a.Op == OpMul {
			flat = append(flat, a.Args...)
		} else {
			flat = append(flat, a)
		}
	}
	coeff := big.NewRat(1, 1)
	var rest []*Expr
	for _, a := range flat {
		if a.Op == OpConst {
			coeff.Mul(coeff, a.Val)
			continue
		}
		rest = append(rest, a)
	}
	if coeff.Sign() == 0 {
		return Zero()
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	if len(rest) == 0 {
		return Const(coeff)
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		if len(rest) == 1 {
			return rest[0]
		}
		return &Expr{Op: OpMul, Args: rest}
	}
	return &Expr{Op: OpMul, Args: append([]*Expr{Const(coeff)}, rest...)}
}

func simplifyDiv(a, b *Expr) *Expr {
	if b.Op == OpConst && b.Val.Sign() != 0 {
		return simplifyMul([]*Expr{a, Const(new(big.Rat).Inv(b.Val))})
	}
	if a.Op == OpConst && a.Val.Sign() == 0 {
		return Zero()
	}
	return &Expr{Op: OpDiv, Args: []*Expr{a, b}}
}

func simplifyPow(a, e *Expr) *Expr {
	if e.Op == OpConst {
		if e.Val.Cmp(big.NewRat(1, 1)) == 0 {
			return a
		}
		if e.Val.Sign() == 0 {
			return One()
		}
	}
	if a.Op == OpConst && e.Op == OpConst && e.Val.IsInt() {
		n := e.Val.Num().Int64()
		if n >= 0 {
			r := big.NewRat(1, 1)
			base := a.Val
			for i := int64(0); i < n; i++ {
				r.Mul(r, base)
			}
			return Const(r)
		}
	}
	return &Expr{Op: OpPow, Args: []*Expr{a, e}}
}

func simplifyFunc(name string, a *Expr) *Expr {
	if a.Op == OpConst {
		if v, err := evalFunc(name, ratToFloat(a.Val)); err == nil {
			if r, ok := floatToRat(v); ok {
				return Const(r)
			}
		}
	}
	return &Expr{Op: OpFunc, Name: name, Args: []*Expr{a}}
}

// ---------------------------------------------------------------------------
// Predicates

// AsConstant returns (value, true) if e is a pure rational constant.
func (e *Expr) AsConstant() (*big.Rat, bool) {
	s := e.Simplify()
	if s.Op == OpConst {
		return s.Val, true
	}
	return nil, false
}

// AsVar reports whether e is a bare free variable reference, returning
// its name.
func (e *Expr) AsVar() (string, bool) {
	s := e.Simplify()
	if s.Op == OpVar {
		return s.Name, true
	}
	return "", false
}

// IsZero reports whether e is the constant zero.
func (e *Expr) IsZero() bool {
	v, ok := e.AsConstant()
	return ok && v.Sign() == 0
}

// IsOne reports whether e is the constant one.
func (e *Expr) IsOne() bool {
	v, ok := e.AsConstant()
	return ok && v.Cmp(big.NewRat(1, 1)) == 0
}

// Sign returns the sign of e (-1, 0, 1) and true if e is constant.
func (e *Expr) Sign() (int, bool) {
	v, ok := e.AsConstant()
	if !ok {
		return 0, false
	}
	return v.Sign(), true
}

// ---------------------------------------------------------------------------
// Linear form extraction, used exclusively by the decision registry.

// Linear returns the coefficients and constant of e when e is an affine
// combination of variables (sums of const*var and bare constants, with no
// products of two non-constant factors, no division by a variable
// expression, and no function application). ok is false otherwise.
func (e *Expr) Linear() (map[string]*big.Rat, *big.Rat, bool) {
	s := e.Simplify()
	coeffs := map[string]*big.Rat{}
	constant := new(big.Rat)
	if !addLinear(s, coeffs, constant, big.NewRat(1, 1)) {
		return nil, nil, false
	}
	return coeffs, constant, true
}

func addLinear(e *Expr, coeffs map[string]*big.Rat, constant *big.Rat, scale *big.Rat) bool {
	switch e.Op {
	case OpConst:
		constant.Add(constant, new(big.Rat).Mul(e.Val, scale))
		return true
	case OpVar:
		c := coeffs[e.Name]
		if c == nil {
			c = new(big.Rat)
			coeffs[e.Name] = c
		}
		c.Add(c, scale)
		return true
	case OpAdd:
		for _, a := range e.Args {
			if !addLinear(a, coeffs, constant, scale) {
				return false
			}
		}
		return true
	case OpMul:
		var varFactor *Expr
		coeff := new(big.Rat).Set(scale)
		for _, a := range e.Args {
			switch a.Op {
			case OpConst:
				coeff.Mul(coeff, a.Val)
			case OpVar:
				if varFactor != nil {
					return false
				}
				varFactor = a
			default:
				return false
			}
		}
		if varFactor == nil {
			constant.Add(constant, coeff)
			return true
		}
		return addLinear(varFactor, coeffs, constant, coeff)
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Free variables

// FreeVars returns the set of variable names occurring in e.
func (e *Expr) FreeVars() map[string]struct{} {
	out := map[string]struct{}{}
	e.collectVars(out)
	return out
}

func (e *Expr) collectVars(out map[string]struct{}) {
	switch e.Op {
	case OpVar:
		out[e.Name] = struct{}{}
	default:
		for _, a := range e.Args {
			a.collectVars(out)
		}
	}
}

// ---------------------------------------------------------------------------
// Substitution

// Substitute replaces every free occurrence of a bound variable with its
// image and re-simplifies the result.
func (e *Expr) Substitute(bindings map[string]*Expr) *Expr {
	return e.substitute(bindings).Simplify()
}

func (e *Expr) substitute(bindings map[string]*Expr) *Expr {
	switch e.Op {
	case OpConst:
		return e
	case OpVar:
		if v, ok := bindings[e.Name]; ok {
			return v
		}
		return e
	default:
		args := make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = a.substitute(bindings)
		}
		return &Expr{Op: e.Op, Name: e.Name, Args: args}
	}
}

// ---------------------------------------------------------------------------
// Evaluation

// Eval computes the numeric value of e given a full assignment of its free
// variables. It fails on division by zero, functions applied outside their
// domain, or missing variables.
func (e *Expr) Eval(assign map[string]float64) (float64, error) {
	switch e.Op {
	case OpConst:
		return ratToFloat(e.Val), nil
	case OpVar:
		v, ok := assign[e.Name]
		if !ok {
			return 0, fmt.Errorf("symbolic: unassigned variable %q", e.Name)
		}
		return v, nil
	case OpAdd:
		sum := 0.0
		for _, a := range e.Args {
			v, err := a.Eval(assign)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	case OpMul:
		prod := 1.0
		for _, a := range e.Args {
			v, err := a.Eval(assign)
			if err != nil {
				return 0, err
			}
			prod *= v
		}
		return prod, nil
	case OpDiv:
		num, err := e.Args[0].Eval(assign)
		if err != nil {
			return 0, err
		}
		den, err := e.Args[1].Eval(assign)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, fmt.Errorf("symbolic: division by zero")
		}
		return num / den, nil
	case OpPow:
		base, err := e.Args[0].Eval(assign)
		if err != nil {
			return 0, err
		}
		exp, err := e.Args[1].Eval(assign)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case OpFunc:
		arg, err := e.Args[0].Eval(assign)
		if err != nil {
			return 0, err
		}
		return evalFunc(e.Name, arg)
	default:
		return 0, fmt.Errorf("symbolic: cannot evaluate node")
	}
}

func evalFunc(name string, x float64) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(x), nil
	case "cos":
		return math.Cos(x), nil
	case "tan":
		return math.Tan(x), nil
	case "sinh":
		return math.Sinh(x), nil
	case "cosh":
		return math.Cosh(x), nil
	case "tanh":
		return math.Tanh(x), nil
	case "exp":
		return math.Exp(x), nil
	case "log":
		if x <= 0 {
			return 0, fmt.Errorf("symbolic: log of non-positive value %g", x)
		}
		return math.Log(x), nil
	case "log2":
		if x <= 0 {
			return 0, fmt.Errorf("symbolic: log2 of non-positive value %g", x)
		}
		return math.Log2(x), nil
	case "log10":
		if x <= 0 {
			return 0, fmt.Errorf("symbolic: log10 of non-positive value %g", x)
		}
		return math.Log10(x), nil
	case "log1p":
		if x <= -1 {
			return 0, fmt.Errorf("symbolic: log1p of value <= -1 (%g)", x)
		}
		return math.Log1p(x), nil
	case "floor":
		return math.Floor(x), nil
	case "ceil":
		return math.Ceil(x), nil
	case "sqrt":
		if x < 0 {
			return 0, fmt.Errorf("symbolic: sqrt of negative value %g", x)
		}
		return math.Sqrt(x), nil
	default:
		return 0, fmt.Errorf("symbolic: unknown function %q", name)
	}
}

// ---------------------------------------------------------------------------
// Printing

// String returns the canonical textual form of e, used both for display
// and as the hash-consing key for leaf nodes.
func (e *Expr) String() string {
	switch e.Op {
	case OpConst:
		return e.Val.RatString()
	case OpVar:
		return e.Name
	case OpAdd:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, "+") + ")"
	case OpMul:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, "*") + ")"
	case OpDiv:
		return "(" + e.Args[0].String() + "/" + e.Args[1].String() + ")"
	case OpPow:
		return "(" + e.Args[0].String() + "^" + e.Args[1].String() + ")"
	case OpFunc:
		return e.Name + "(" + e.Args[0].String() + ")"
	default:
		return "?"
	}
}

func ratToFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func floatToRat(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	r := new(big.Rat)
	r.SetFloat64(f)
	return r, true
}
