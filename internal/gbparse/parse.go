// Package gbparse reads the command-line front end's polynomial input
// format: a comma-separated list of polynomials over indeterminates named
// x[1], x[2], ..., each polynomial written as a signed sum of monomials
// such as `3*x[1]^2*x[2]-x[3]+1`.
package gbparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/poly"
	"f4gbc/internal/term"
)

var varPattern = regexp.MustCompile(`x\[(\d+)\]`)

// DetectNumVars scans the raw input text for the highest x[N] index
// referenced and returns N, the dimension the term monoid must be built
// with. Returns at least 1 so a monoid is always constructible.
func DetectNumVars(input string) int {
	max := 1
	for _, m := range varPattern.FindAllStringSubmatch(input, -1) {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

// Parse splits input on top-level commas and parses each field as a
// polynomial over the given monoid, ordering and field.
func Parse(input string, m *term.Monoid, ord order.Ordering, f *field.Field) ([]*poly.Polynomial, error) {
	fields := splitTopLevel(input, ',')
	out := make([]*poly.Polynomial, 0, len(fields))
	for _, part := range fields {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := parseOne(part, m, ord, f)
		if err != nil {
			return nil, fmt.Errorf("gbparse: %q: %w", part, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

// parseOne parses a single polynomial expression: a sum of signed
// monomials, each a coefficient and/or a `*`-joined product of x[N]^E
// factors.
func parseOne(expr string, m *term.Monoid, ord order.Ordering, f *field.Field) (*poly.Polynomial, error) {
	terms := splitSignedTerms(expr)
	monos := make([]poly.Monomial, 0, len(terms))
	for _, tstr := range terms {
		mono, err := parseMonomial(tstr, m, f)
		if err != nil {
			return nil, err
		}
		monos = append(monos, mono)
	}
	return poly.New(f, ord, monos), nil
}

// splitSignedTerms splits an expression like "3*x[1]^2-x[2]+1" into
// ["3*x[1]^2", "-x[2]", "+1"], keeping each term's leading sign attached.
func splitSignedTerms(expr string) []string {
	expr = strings.TrimSpace(expr)
	var out []string
	start := 0
	for i := 1; i < len(expr); i++ {
		if (expr[i] == '+' || expr[i] == '-') && expr[i-1] != '*' && expr[i-1] != '^' {
			out = append(out, strings.TrimSpace(expr[start:i]))
			start = i
		}
	}
	out = append(out, strings.TrimSpace(expr[start:]))
	return out
}

func parseMonomial(tstr string, m *term.Monoid, f *field.Field) (poly.Monomial, error) {
	sign := uint64(1)
	tstr = strings.TrimSpace(tstr)
	if strings.HasPrefix(tstr, "+") {
		tstr = tstr[1:]
	} else if strings.HasPrefix(tstr, "-") {
		sign = f.Characteristic() - 1
		tstr = tstr[1:]
	}
	tstr = strings.TrimSpace(tstr)

	powers := make([]uint16, m.NumVars())
	coeff := uint64(1)

	factors := strings.Split(tstr, "*")
	for _, factor := range factors {
		factor = strings.TrimSpace(factor)
		if factor == "" {
			continue
		}
		if sub := varPattern.FindStringSubmatch(factor); sub != nil {
			idx, err := strconv.Atoi(sub[1])
			if err != nil || idx < 1 || idx > m.NumVars() {
				return poly.Monomial{}, fmt.Errorf("indeterminate out of range: %s", factor)
			}
			exp := uint16(1)
			if caret := strings.Index(factor, "^"); caret >= 0 {
				e, err := strconv.Atoi(factor[caret+1:])
				if err != nil || e < 0 {
					return poly.Monomial{}, fmt.Errorf("bad exponent in %s", factor)
				}
				exp = uint16(e)
			}
			powers[idx-1] += exp
			continue
		}
		n, err := strconv.ParseUint(factor, 10, 64)
		if err != nil {
			return poly.Monomial{}, fmt.Errorf("unrecognized factor %q", factor)
		}
		coeff = f.Mul(coeff, n%f.Characteristic())
	}

	t := m.Make(powers)
	return poly.Monomial{Coeff: f.Mul(coeff, sign), Term: t}, nil
}
