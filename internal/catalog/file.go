package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCategory mirrors Category for the YAML overlay file.
type fileCategory struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Patterns []string `yaml:"patterns"`
}

type catalogFile struct {
	HIV          []fileCategory `yaml:"hiv"`
	MentalHealth []fileCategory `yaml:"mental_health"`
}

// Load returns the HIV and mental-health catalogs, optionally overlaid
// from a YAML file. An empty path yields the built-ins; a configured
// path replaces the categories of whichever domains the file lists.
// A configured file that is missing, unreadable, malformed, or fails
// catalog validation is a fatal configuration error.
func Load(path string) (hiv, mentalHealth Catalog, err error) {
	hiv = HIV()
	mentalHealth = MentalHealth()

	if path == "" {
		return hiv, mentalHealth, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}

	if len(f.HIV) > 0 {
		hiv, err = New(DomainHIV, toCategories(f.HIV))
		if err != nil {
			return Catalog{}, Catalog{}, err
		}
	}
	if len(f.MentalHealth) > 0 {
		mentalHealth, err = New(DomainMentalHealth, toCategories(f.MentalHealth))
		if err != nil {
			return Catalog{}, Catalog{}, err
		}
	}

	return hiv, mentalHealth, nil
}

func toCategories(fcs []fileCategory) []Category {
	cats := make([]Category, len(fcs))
	for i, fc := range fcs {
		cats[i] = Category{Name: fc.Name, Weight: fc.Weight, Patterns: fc.Patterns}
	}
	return cats
}
