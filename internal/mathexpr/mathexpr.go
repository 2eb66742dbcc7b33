// ABOUTME: Tokenizer and dual-stack precedence evaluator for infix arithmetic
// ABOUTME: Bad input yields an undefined result, never a panic or error

package mathexpr

import (
	"math"
	"strconv"
)

// precedence of the supported binary operators.
var precedence = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'^': 3,
}

// Evaluate evaluates a fully tokenizable infix expression over the character
// set [0-9.()+-*/^ ]. The second return value is false when the result is
// undefined: division by zero, malformed stacks, or unparsable numbers.
// Results are rounded to 4 decimal places.
//
// Callers should run IsWellFormed first; Evaluate still refuses to crash on
// anything that slips through.
func Evaluate(expr string) (float64, bool) {
	e := &evaluator{}

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case isNumberChar(c):
			j := i
			for j < len(expr) && isNumberChar(expr[j]) {
				j++
			}
			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return 0, false
			}
			e.operands = append(e.operands, v)
			i = j
		case c == '(':
			e.ops = append(e.ops, c)
			i++
		case c == ')':
			for !e.bad && e.topOp() != '(' {
				e.applyTop()
			}
			if e.bad || len(e.ops) == 0 {
				return 0, false
			}
			e.ops = e.ops[:len(e.ops)-1] // discard the matching '('
			i++
		case precedence[c] > 0:
			for len(e.ops) > 0 && e.topOp() != '(' && precedence[c] <= precedence[e.topOp()] {
				e.applyTop()
			}
			if e.bad {
				return 0, false
			}
			e.ops = append(e.ops, c)
			i++
		default:
			i++ // whitespace
		}
		if e.bad {
			return 0, false
		}
	}

	for len(e.ops) > 0 {
		e.applyTop()
		if e.bad {
			return 0, false
		}
	}

	if len(e.operands) != 1 {
		return 0, false
	}
	return round4(e.operands[0]), true
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// evaluator holds the operand and operator stacks. bad is sticky: once a pop
// underflows or a division by zero occurs, the whole expression is undefined.
type evaluator struct {
	operands []float64
	ops      []byte
	bad      bool
}

// topOp returns the top of the operator stack, or 0 when empty (marks bad).
func (e *evaluator) topOp() byte {
	if len(e.ops) == 0 {
		e.bad = true
		return 0
	}
	return e.ops[len(e.ops)-1]
}

// applyTop pops one operator and two operands and pushes the result.
// operand1 is popped first, so '-' computes operand2 - operand1, '/' computes
// operand2 / operand1, and '^' computes operand2 ^ operand1. This preserves
// left-to-right semantics given the stack pop order.
func (e *evaluator) applyTop() {
	if len(e.ops) == 0 || len(e.operands) < 2 {
		e.bad = true
		return
	}
	op := e.ops[len(e.ops)-1]
	e.ops = e.ops[:len(e.ops)-1]
	operand1 := e.operands[len(e.operands)-1]
	operand2 := e.operands[len(e.operands)-2]
	e.operands = e.operands[:len(e.operands)-2]

	var result float64
	switch op {
	case '+':
		result = operand1 + operand2
	case '-':
		result = operand2 - operand1
	case '*':
		result = operand1 * operand2
	case '/':
		if operand1 == 0 {
			e.bad = true
			return
		}
		result = operand2 / operand1
	case '^':
		result = math.Pow(operand2, operand1)
	default:
		e.bad = true
		return
	}
	e.operands = append(e.operands, result)
}

// round4 rounds to 4 decimal places to keep floating-point noise out of
// displayed results.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
