package catalog

import (
	"fmt"
	"regexp"
)

// Domain identifiers for the two risk dimensions.
const (
	DomainHIV          = "hiv"
	DomainMentalHealth = "mental_health"
)

// Category is a named cluster of related patterns with a single weight.
// A category is triggered when any one of its patterns matches; it then
// contributes its full weight to the domain score exactly once.
type Category struct {
	Name     string
	Weight   float64
	Patterns []string

	compiled []*regexp.Regexp
}

// Triggered reports whether any of the category's patterns matches the
// given text. Patterns are compiled case-insensitively, so the casing of
// both pattern and text is irrelevant.
func (c Category) Triggered(text string) bool {
	for _, re := range c.compiled {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Catalog is the read-only set of categories for one risk domain.
// Construct with New; a Catalog is immutable after construction and safe
// for concurrent use.
type Catalog struct {
	Domain     string
	Categories []Category
}

// New validates and compiles a domain catalog. It is the only place
// configuration errors can surface — scoring against a constructed
// Catalog cannot fail.
func New(domain string, categories []Category) (Catalog, error) {
	if domain == "" {
		return Catalog{}, fmt.Errorf("catalog: empty domain")
	}
	if len(categories) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s: no categories", domain)
	}

	seen := make(map[string]bool, len(categories))
	compiled := make([]Category, len(categories))
	for i, c := range categories {
		if c.Name == "" {
			return Catalog{}, fmt.Errorf("catalog %s: category %d has no name", domain, i)
		}
		if seen[c.Name] {
			return Catalog{}, fmt.Errorf("catalog %s: duplicate category %q", domain, c.Name)
		}
		seen[c.Name] = true

		if c.Weight <= 0 || c.Weight > 1 {
			return Catalog{}, fmt.Errorf("catalog %s: category %q weight %g outside (0,1]", domain, c.Name, c.Weight)
		}
		if len(c.Patterns) == 0 {
			return Catalog{}, fmt.Errorf("catalog %s: category %q has no patterns", domain, c.Name)
		}

		c.compiled = make([]*regexp.Regexp, len(c.Patterns))
		for j, p := range c.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return Catalog{}, fmt.Errorf("catalog %s: category %q pattern %q: %w", domain, c.Name, p, err)
			}
			c.compiled[j] = re
		}
		compiled[i] = c
	}

	return Catalog{Domain: domain, Categories: compiled}, nil
}

func mustNew(domain string, categories []Category) Catalog {
	cat, err := New(domain, categories)
	if err != nil {
		panic(err)
	}
	return cat
}
