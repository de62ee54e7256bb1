// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// family.go - the closed set of graph family tags.

package builder

import "fmt"

// Family identifies a graph family.
type Family int

const (
	FamilyComplete Family = iota + 1
	FamilyCompleteBipartite
	FamilyStar
	FamilyPath
	FamilyCycle
	FamilyHypercube
	FamilyRandomBinomial
	FamilyWheel
)

var familyTags = map[Family]string{
	FamilyComplete:          "complete",
	FamilyCompleteBipartite: "complete_bipartite",
	FamilyStar:              "star",
	FamilyPath:              "path",
	FamilyCycle:             "cycle",
	FamilyHypercube:         "hyper_cube",
	FamilyRandomBinomial:    "random_binomial",
	FamilyWheel:             "wheel",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{
		FamilyComplete, FamilyCompleteBipartite, FamilyStar, FamilyPath,
		FamilyCycle, FamilyHypercube, FamilyRandomBinomial, FamilyWheel,
	}
}

// String returns the family tag, e.g. "hyper_cube".
func (f Family) String() string {
	if s, ok := familyTags[f]; ok {
		return s
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily maps a tag to its Family. Unknown tags yield ErrInvalidFamily.
func ParseFamily(tag string) (Family, error) {
	for f, s := range familyTags {
		if s == tag {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", tag, ErrInvalidFamily)
}

// Stochastic reports whether instances of f depend on the random source, so
// that every experiment sample needs its own instance.
func (f Family) Stochastic() bool { return f == FamilyRandomBinomial }
