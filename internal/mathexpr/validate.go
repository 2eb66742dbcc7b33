// ABOUTME: Structural validator for arithmetic expressions
// ABOUTME: Recursively reduces parenthesized groups to atomic numbers, then checks a flat grammar

package mathexpr

import (
	"regexp"
	"strings"
)

// flatExprRE matches a parenthesis-free expression: number (op number)*.
var flatExprRE = regexp.MustCompile(`^\s*\d+(\.\d+)?(\s*[+\-*/^]\s*\d+(\.\d+)?)*\s*$`)

// IsWellFormed reports whether expr parses as number (op number)* where a
// balanced parenthesized group counts as an atomic number. Unbalanced
// parentheses fail.
func IsWellFormed(expr string) bool {
	open := strings.IndexByte(expr, '(')
	if open == -1 {
		if strings.IndexByte(expr, ')') != -1 {
			return false
		}
		return flatExprRE.MatchString(expr)
	}

	closing := matchingParen(expr, open)
	if closing == -1 {
		return false
	}

	if !IsWellFormed(expr[open+1 : closing]) {
		return false
	}

	// The group stands in for an atomic number. Padding with spaces keeps it
	// from fusing with an adjacent digit, so "2(3)" stays invalid.
	return IsWellFormed(expr[:open] + " 0 " + expr[closing+1:])
}

// matchingParen returns the index of the parenthesis closing the one at open,
// or -1 if the expression is unbalanced.
func matchingParen(expr string, open int) int {
	depth := 0
	for i := open; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
