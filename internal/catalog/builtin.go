package catalog

// Built-in catalogs. Weights are design constants: they do not sum to 1
// and the aggregate score is capped downstream, so a single dominant
// category still needs corroboration to reach the top band (except
// suicidality, which sits exactly on the high boundary by itself).
// Patterns are matched case-insensitively; the `.?` runs absorb optional
// apostrophes and hyphens ("didn't"/"didnt", "one-night"/"one night").

// HIV returns the HIV-acquisition risk catalog.
func HIV() Catalog {
	return mustNew(DomainHIV, []Category{
		{
			Name:   "unprotected_sex",
			Weight: 0.45,
			Patterns: []string{
				`without a condom`,
				`no condom`,
				`didn.?t use (a )?condom`,
				`condom broke`,
				`condom slipped`,
			},
		},
		{
			Name:   "sti_symptoms",
			Weight: 0.25,
			Patterns: []string{
				`genital (sore|sores|ulcer|ulcers|blister|blisters)`,
				`burn(s|ing)? when (i )?pee`,
				`penile discharge`,
				`vaginal discharge`,
				`smelly discharge`,
			},
		},
		{
			Name:   "partner_hiv_positive_or_unknown",
			Weight: 0.25,
			Patterns: []string{
				`partner.*(hiv\+|hiv positive)`,
				`on (arvs|art)`,
				`don.?t know.*partner.?s? status`,
			},
		},
		{
			Name:   "multiple_partners",
			Weight: 0.15,
			Patterns: []string{
				`multiple partners?`,
				`more than one (guy|girl|partner)`,
				`one.?night stand`,
				`hook.?up`,
				`cheated`,
				`affair`,
				`sex worker`,
			},
		},
	})
}

// MentalHealth returns the mental-health risk catalog.
func MentalHealth() Catalog {
	return mustNew(DomainMentalHealth, []Category{
		{
			Name:   "suicidality_or_self_harm",
			Weight: 0.60,
			Patterns: []string{
				`kill myself`,
				`end it all`,
				`don.?t want to live`,
				`rather be dead`,
				`suicide`,
			},
		},
		{
			Name:   "depression",
			Weight: 0.25,
			Patterns: []string{
				`(i feel|feeling) (sad|down|empty|numb)`,
				`lost interest`,
				`no energy`,
				`tired of life`,
				`worthless`,
			},
		},
		{
			Name:   "anxiety",
			Weight: 0.20,
			Patterns: []string{
				`anxious`,
				`anxiety`,
				`panic attack`,
				`heart.*racing`,
			},
		},
		{
			Name:   "substance_use",
			Weight: 0.15,
			Patterns: []string{
				`drinking a lot`,
				`using (weed|dagga|marijuana|drugs)`,
			},
		},
	})
}
