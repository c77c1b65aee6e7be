package catalog

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	cat, err := New("test", []Category{
		{Name: "a", Weight: 0.5, Patterns: []string{`foo`}},
		{Name: "b", Weight: 1.0, Patterns: []string{`bar`, `baz`}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Domain != "test" {
		t.Errorf("domain = %q, want test", cat.Domain)
	}
	if len(cat.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cat.Categories))
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		domain     string
		categories []Category
		wantErr    string
	}{
		{
			"empty domain",
			"",
			[]Category{{Name: "a", Weight: 0.5, Patterns: []string{`x`}}},
			"empty domain",
		},
		{
			"no categories",
			"test",
			nil,
			"no categories",
		},
		{
			"unnamed category",
			"test",
			[]Category{{Weight: 0.5, Patterns: []string{`x`}}},
			"has no name",
		},
		{
			"duplicate name",
			"test",
			[]Category{
				{Name: "a", Weight: 0.5, Patterns: []string{`x`}},
				{Name: "a", Weight: 0.3, Patterns: []string{`y`}},
			},
			"duplicate category",
		},
		{
			"zero weight",
			"test",
			[]Category{{Name: "a", Weight: 0, Patterns: []string{`x`}}},
			"outside (0,1]",
		},
		{
			"negative weight",
			"test",
			[]Category{{Name: "a", Weight: -0.2, Patterns: []string{`x`}}},
			"outside (0,1]",
		},
		{
			"weight above one",
			"test",
			[]Category{{Name: "a", Weight: 1.1, Patterns: []string{`x`}}},
			"outside (0,1]",
		},
		{
			"empty rule set",
			"test",
			[]Category{{Name: "a", Weight: 0.5}},
			"has no patterns",
		},
		{
			"bad regex",
			"test",
			[]Category{{Name: "a", Weight: 0.5, Patterns: []string{`(`}}},
			"pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.domain, tt.categories)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCategory_Triggered(t *testing.T) {
	cat, err := New("test", []Category{
		{Name: "a", Weight: 0.5, Patterns: []string{`didn.?t use (a )?condom`, `no condom`}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cat.Categories[0]

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"first pattern with apostrophe", "we didn't use a condom", true},
		{"first pattern without apostrophe", "we didnt use condom", true},
		{"second pattern", "there was no condom", true},
		{"uppercase text", "WE DIDN'T USE A CONDOM", true},
		{"no match", "we were careful", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Triggered(tt.text); got != tt.want {
				t.Errorf("Triggered(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategory_TriggeredMixedCasePattern(t *testing.T) {
	// Pattern casing must not matter either: categories coming from an
	// overlay file may be authored with uppercase letters.
	cat, err := New("test", []Category{
		{Name: "a", Weight: 0.5, Patterns: []string{`Needle Stick`}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cat.Categories[0].Triggered("a needle stick at work") {
		t.Error("uppercase-authored pattern should match lowercase text")
	}
	if !cat.Categories[0].Triggered("NEEDLE STICK reported") {
		t.Error("uppercase-authored pattern should match uppercase text")
	}
}

func TestBuiltinCatalogs(t *testing.T) {
	hiv := HIV()
	if hiv.Domain != DomainHIV {
		t.Errorf("hiv domain = %q", hiv.Domain)
	}
	wantHIV := []string{
		"unprotected_sex",
		"sti_symptoms",
		"partner_hiv_positive_or_unknown",
		"multiple_partners",
	}
	if len(hiv.Categories) != len(wantHIV) {
		t.Fatalf("expected %d hiv categories, got %d", len(wantHIV), len(hiv.Categories))
	}
	for i, name := range wantHIV {
		if hiv.Categories[i].Name != name {
			t.Errorf("hiv category %d = %q, want %q", i, hiv.Categories[i].Name, name)
		}
	}

	mh := MentalHealth()
	if mh.Domain != DomainMentalHealth {
		t.Errorf("mental health domain = %q", mh.Domain)
	}
	if mh.Categories[0].Name != "suicidality_or_self_harm" || mh.Categories[0].Weight != 0.60 {
		t.Errorf("dominant mh category = %q (%g), want suicidality_or_self_harm (0.6)",
			mh.Categories[0].Name, mh.Categories[0].Weight)
	}

	// Weight ordering: the dominant signal leads each catalog.
	if hiv.Categories[0].Weight != 0.45 {
		t.Errorf("unprotected_sex weight = %g, want 0.45", hiv.Categories[0].Weight)
	}
	for _, cat := range []Catalog{hiv, mh} {
		for _, c := range cat.Categories[1:] {
			if c.Weight > cat.Categories[0].Weight {
				t.Errorf("%s: category %q (%g) outweighs dominant %q (%g)",
					cat.Domain, c.Name, c.Weight, cat.Categories[0].Name, cat.Categories[0].Weight)
			}
		}
	}
}
