package syntax

import (
	"maps"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	starsyntax "go.starlark.net/syntax"

	"github.com/ezrec/binc/internal"
	"github.com/ezrec/binc/operator"
	"github.com/ezrec/binc/word"
)

const (
	EXPRESSION_STEPS_MAX = 100000 // Starlark steps before an expression is cancelled.
)

// Predefined expression names.
var sysDefines = map[string]*big.Int{
	"WIDTH_MIN": big.NewInt(word.WIDTH_MIN),
	"WIDTH_MAX": big.NewInt(word.WIDTH_MAX),
}

// expression reads '$(...)' and evaluates the text between the parentheses
// as a Starlark expression. Everything up to the matching ')' is taken
// verbatim.
func (p *Parser) expression(s *scanner, negative bool) (op operator.Operand, err error) {
	s.raw()
	if !s.is('(') {
		err = ErrRvalue
		return
	}
	s.raw()

	var text strings.Builder
	depth := 1
	for {
		c, ok := s.current()
		if !ok {
			err = ErrExpressionClose
			return
		}
		s.raw()

		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
		text.WriteRune(c)
	}
	s.skip()

	value, err := p.Evaluate(text.String())
	if err != nil {
		return
	}
	if negative {
		value.Neg(value)
	}

	// Re-use the literal rules for width and sign.
	return literal(value.Text(16), 16)
}

// Evaluate runs a Starlark expression and returns its integer result.
func (p *Parser) Evaluate(expr string) (value *big.Int, err error) {
	log.Tracef("syntax: evaluate %q", expr)

	pred := starlark.StringDict{}
	for key, v := range internal.Concat2(maps.All(sysDefines), p.Defines) {
		pred[key] = starlark.MakeBigInt(v)
	}

	thread := starlark.Thread{Name: "binc"}
	thread.SetMaxExecutionSteps(EXPRESSION_STEPS_MAX)
	opts := starsyntax.FileOptions{}
	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrExpressionType}
		return
	}

	value = rc.BigInt()
	return
}
