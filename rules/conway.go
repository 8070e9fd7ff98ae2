package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule selects the liveness/birth thresholds applied to neighbor counts.
type Rule int

const (
	// Bounded keeps a live cell alive unless it has fewer than 2 or more
	// than 4 live neighbors. Dead cells are born on exactly 3.
	Bounded Rule = iota
	// Conway is the canonical B3/S23 rule.
	Conway
)

var ruleNames = map[Rule]string{
	Bounded: "bounded",
	Conway:  "conway",
}

// ParseRule resolves a rule by name, case-insensitively.
func ParseRule(name string) (Rule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range ruleNames {
		if n == name {
			return r, nil
		}
	}
	return Bounded, errors.Errorf("[ParseRule] unknown rule: %q", name)
}

func (r Rule) String() string {
	if n, ok := ruleNames[r]; ok {
		return n
	}
	return "unknown"
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool {
	if r == Conway {
		return n == 2 || n == 3
	}
	return !(n < 2 || n > 4)
}

// IsBorn reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) IsBorn(n int) bool {
	return n == 3
}

// Next returns the state of a cell in the following generation.
func (r Rule) Next(n int, alive bool) bool {
	if alive {
		return r.Survives(n)
	}
	return r.IsBorn(n)
}

// Survives applies the Bounded survival rule.
func Survives(n int) bool { return Bounded.Survives(n) }

// IsBorn applies the birth rule shared by every variant.
func IsBorn(n int) bool { return Bounded.IsBorn(n) }
