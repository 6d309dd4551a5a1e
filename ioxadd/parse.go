// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package ioxadd implements the textual import/export format for
// diagrams built with package xadd. Nothing needs a general-purpose
// parsing library here: rudd's own text handling (stdio.go) is a
// hand-rolled bufio/tabwriter printer with no parser at all, and nothing
// in the wider example corpus imports a parser-combinator or grammar
// library. This package therefore hand-rolls a small recursive-descent
// parser/tokenizer over text/scanner, the same tradeoff rudd makes for
// its own text I/O; see DESIGN.md for the standard-library justification.
//
// Grammar (informal):
//
//	node     := leaf | internal
//	leaf     := "(" "[" expr "]" ")"
//	internal := "(" decision node node ")"
//	decision := "[" ineq "]" | ident
//	ineq     := expr relop expr
//	relop    := "<=" | "<" | ">=" | ">" | "==" | "!="
//	expr     := term (("+" | "-") term)*
//	term     := factor (("*" | "/") factor)*
//	factor   := ("+" | "-") factor | power
//	power    := atom ("^" atom)?
//	atom     := number | ident ("(" expr ")")? | "(" expr ")"
//
// "<" and ">" are accepted as syntax but resolve to the same decision as
// their non-strict counterparts, matching the boundary-is-measure-zero
// approximation the rest of the module already makes for strict
// inequalities (see DESIGN.md); "!=" resolves to the same decision as
// "==" with its two branches swapped, since the two are logical
// negations of each other and the engine's only equality test is "== 0".
package ioxadd

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/symbolic"
)

// Parse reads a single diagram description from src and builds it in s.
func Parse(s *xadd.Store, src string) (xadd.NodeID, error) {
	p := &parser{s: s}
	p.scan.Init(strings.NewReader(src))
	p.scan.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.next()
	node, err := p.parseNode()
	if err != nil {
		return 0, err
	}
	if p.tok != scanner.EOF {
		return 0, fmt.Errorf("ioxadd: unexpected trailing input %q", p.text)
	}
	return node, nil
}

// ParseInequality parses a standalone linear inequality, such as
// "x - 3 <= 0" or "x >= 0", with no surrounding node structure — the
// small piece of grammar the ReduceLP precondition surface (the
// --assume flag) needs that a full diagram parse does not. The result
// is normalized to the "expr <= 0" form ReduceLP's preconditions
// expect, and, matching the strict/non-strict approximation the rest of
// the package's decision grammar makes, "<" is treated the same as
// "<=" and ">" the same as ">=". "==" and "!=" are rejected: a
// precondition constrains feasibility, it is not a branch to take, so
// there is no use for an equality precondition here.
func ParseInequality(src string) (*symbolic.Expr, error) {
	p := &parser{}
	p.scan.Init(strings.NewReader(src))
	p.scan.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.next()

	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	relop, err := p.parseRelop()
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok != scanner.EOF {
		return nil, fmt.Errorf("ioxadd: unexpected trailing input %q", p.text)
	}

	switch relop {
	case "<=", "<":
		return symbolic.Sub(lhs, rhs), nil
	case ">=", ">":
		return symbolic.Sub(rhs, lhs), nil
	default:
		return nil, fmt.Errorf("ioxadd: precondition %q must be an inequality (<=, <, >=, or >), not %q", src, relop)
	}
}

type parser struct {
	s    *xadd.Store
	scan scanner.Scanner
	tok  rune
	text string
}

func (p *parser) next() {
	p.tok = p.scan.Scan()
	p.text = p.scan.TokenText()
}

func (p *parser) expect(text string) error {
	if p.text != text {
		return fmt.Errorf("ioxadd: expected %q, got %q at %s", text, p.text, p.scan.Pos())
	}
	p.next()
	return nil
}

// parseNode parses a leaf "([expr])" or an internal node
// "(decision node node)", where decision is either a bracketed
// inequality or a bare Boolean identifier.
func (p *parser) parseNode() (xadd.NodeID, error) {
	if err := p.expect("("); err != nil {
		return 0, err
	}

	if p.text != "[" {
		if p.tok != scanner.Ident {
			return 0, fmt.Errorf("ioxadd: expected \"[\" or a Boolean identifier at %s, got %q", p.scan.Pos(), p.text)
		}
		name := p.text
		p.next()
		low, err := p.parseNode()
		if err != nil {
			return 0, err
		}
		high, err := p.parseNode()
		if err != nil {
			return 0, err
		}
		if err := p.expect(")"); err != nil {
			return 0, err
		}
		return p.s.MakeDecisionNode(symbolic.Var(name), true, low, high)
	}

	p.next()
	lhs, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	if p.text == "]" {
		p.next()
		if err := p.expect(")"); err != nil {
			return 0, err
		}
		return p.s.Terminal(lhs), nil
	}

	relop, err := p.parseRelop()
	if err != nil {
		return 0, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect("]"); err != nil {
		return 0, err
	}

	low, err := p.parseNode()
	if err != nil {
		return 0, err
	}
	high, err := p.parseNode()
	if err != nil {
		return 0, err
	}
	if err := p.expect(")"); err != nil {
		return 0, err
	}

	switch relop {
	case "<=", "<":
		return p.s.MakeDecisionNode(symbolic.Sub(lhs, rhs), false, low, high)
	case ">=", ">":
		return p.s.MakeDecisionNode(symbolic.Sub(rhs, lhs), false, low, high)
	case "==":
		return p.s.MakeEqualityNode(symbolic.Sub(lhs, rhs), low, high)
	case "!=":
		return p.s.MakeEqualityNode(symbolic.Sub(lhs, rhs), high, low)
	default:
		return 0, fmt.Errorf("ioxadd: unreachable relop %q", relop)
	}
}

// parseRelop consumes one of the six RELOP tokens. text/scanner
// tokenizes one rune at a time and has no notion of a multi-character
// operator, so "<=", "==", and "!=" each arrive as two consecutive
// single-character tokens rather than one.
func (p *parser) parseRelop() (string, error) {
	switch p.text {
	case "<":
		p.next()
		if p.text == "=" {
			p.next()
			return "<=", nil
		}
		return "<", nil
	case ">":
		p.next()
		if p.text == "=" {
			p.next()
			return ">=", nil
		}
		return ">", nil
	case "=":
		p.next()
		if err := p.expect("="); err != nil {
			return "", err
		}
		return "==", nil
	case "!":
		p.next()
		if err := p.expect("="); err != nil {
			return "", err
		}
		return "!=", nil
	default:
		return "", fmt.Errorf("ioxadd: expected a comparison operator at %s, got %q", p.scan.Pos(), p.text)
	}
}

func (p *parser) parseExpr() (*symbolic.Expr, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.text == "+" || p.text == "-" {
		op := p.text
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			term = symbolic.Add(term, rhs)
		} else {
			term = symbolic.Sub(term, rhs)
		}
	}
	return term, nil
}

func (p *parser) parseTerm() (*symbolic.Expr, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.text == "*" || p.text == "/" {
		op := p.text
		p.next()
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			factor = symbolic.Mul(factor, rhs)
		} else {
			factor = symbolic.Div(factor, rhs)
		}
	}
	return factor, nil
}

func (p *parser) parseFactor() (*symbolic.Expr, error) {
	if p.text == "-" {
		p.next()
		e, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return symbolic.Neg(e), nil
	}
	if p.text == "+" {
		p.next()
		return p.parseFactor()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*symbolic.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.text == "^" {
		p.next()
		exp, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return symbolic.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (*symbolic.Expr, error) {
	switch {
	case p.tok == scanner.Int || p.tok == scanner.Float:
		text := p.text
		p.next()
		r, ok := new(big.Rat).SetString(text)
		if !ok {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("ioxadd: malformed number %q", text)
			}
			r = new(big.Rat).SetFloat64(f)
		}
		return symbolic.Const(r), nil
	case p.tok == scanner.Ident:
		name := p.text
		p.next()
		if p.text == "(" {
			p.next()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return symbolic.Func1(name, arg), nil
		}
		return symbolic.Var(name), nil
	case p.text == "(":
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("ioxadd: unexpected token %q at %s", p.text, p.scan.Pos())
	}
}
