package main

import (
	"fmt"
	"strings"

	"f4gbc/internal/poly"
	"f4gbc/internal/term"
)

func printBasis(polys []*poly.Polynomial) {
	parts := make([]string, len(polys))
	for i, p := range polys {
		parts[i] = formatPolynomial(p)
	}
	fmt.Println(strings.Join(parts, ", "))
}

func formatPolynomial(p *poly.Polynomial) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, mono := range p.Terms() {
		if i > 0 {
			b.WriteString("+")
		}
		fmt.Fprintf(&b, "%d", mono.Coeff)
		if s := formatTerm(mono.Term); s != "" {
			b.WriteString("*")
			b.WriteString(s)
		}
	}
	return b.String()
}

func formatTerm(t *term.Term) string {
	var parts []string
	for i, e := range t.Powers() {
		if e == 0 {
			continue
		}
		if e == 1 {
			parts = append(parts, fmt.Sprintf("x[%d]", i+1))
		} else {
			parts = append(parts, fmt.Sprintf("x[%d]^%d", i+1, e))
		}
	}
	return strings.Join(parts, "*")
}
