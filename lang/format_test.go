package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/fundl/model"
)

func mustFormat(t *testing.T, cfg *model.Configuration) string {
	t.Helper()

	formatted, err := Format(cfg)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	return formatted
}

func TestFormat_RoundTrip(t *testing.T) {
	cfg, err := ParseString(sampleSource)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	formatted := mustFormat(t, cfg)

	again, err := ParseString(formatted)
	if err != nil {
		t.Fatalf("formatted output does not parse: %v\n%s", err, formatted)
	}

	if mustFormat(t, again) != formatted {
		t.Errorf("formatting is not a fixed point:\nfirst:\n%s\nsecond:\n%s",
			formatted, mustFormat(t, again))
	}
}

func TestFormat_RawStrings(t *testing.T) {
	// No escape processing exists in the literal syntax, so a backslash
	// or tab inside a string is an ordinary character and must survive a
	// format round trip byte for byte.
	cfg, err := ParseString("funding \"a\\b\" {\n" +
		"  description \"tab\there\"\n" +
		"}")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if cfg.Name != `a\b` {
		t.Fatalf("expected name %q, got %q", `a\b`, cfg.Name)
	}

	formatted := mustFormat(t, cfg)

	if !strings.Contains(formatted, `funding "a\b" {`) {
		t.Errorf("backslash must render verbatim:\n%s", formatted)
	}

	again, err := ParseString(formatted)
	if err != nil {
		t.Fatalf("formatted output does not parse: %v\n%s", err, formatted)
	}

	if again.Name != cfg.Name {
		t.Errorf("name changed across round trip: %q != %q", again.Name, cfg.Name)
	}

	if again.Description != "tab\there" {
		t.Errorf("description changed across round trip: %q", again.Description)
	}
}

func TestFormat_UnquotableStrings(t *testing.T) {
	tests := []struct {
		name string
		cfg  *model.Configuration
	}{
		{
			name: "embedded quote",
			cfg:  &model.Configuration{Name: `say "hi"`, Currency: model.USD},
		},
		{
			name: "embedded newline",
			cfg: &model.Configuration{
				Name:        "P",
				Description: "line one\nline two",
				Currency:    model.USD,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.cfg)
			if !errors.Is(err, ErrUnquotableString) {
				t.Errorf("Format() error = %v, want ErrUnquotableString", err)
			}
		})
	}
}

func TestFormat_Minimal(t *testing.T) {
	cfg := &model.Configuration{
		Name:     "Tiny",
		Currency: model.USD,
	}

	want := "funding \"Tiny\" {\n  currency USD\n}\n"

	if got := mustFormat(t, cfg); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormat_OmitsDefaults(t *testing.T) {
	cfg, err := ParseString(`funding "P" {
  sources { github_sponsors "alice" { type both active true } }
  goals { goal "G" { target 100 USD current 0 USD } }
}`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	formatted := mustFormat(t, cfg)

	for _, absent := range []string{"type both", "active true", "current 0"} {
		if strings.Contains(formatted, absent) {
			t.Errorf("canonical form should omit default %q:\n%s", absent, formatted)
		}
	}

	again, err := ParseString(formatted)
	if err != nil {
		t.Fatalf("formatted output does not parse: %v", err)
	}

	if again.Sources[0].Type != model.Both || !again.Sources[0].Active {
		t.Errorf("defaults not restored on reparse: %+v", again.Sources[0])
	}
}

func TestFormat_PreservesNonDefaults(t *testing.T) {
	cfg, err := ParseString(`funding "P" {
  currency GBP
  sources {
    patreon "alice" { type one_time active false }
  }
  tiers {
    tier "T" { amount 12.5 GBP max_sponsors 3 benefits ["a", "b"] }
  }
}`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	formatted := mustFormat(t, cfg)

	for _, present := range []string{
		"currency GBP",
		"type one_time",
		"active false",
		"amount 12.5 GBP",
		"max_sponsors 3",
		`benefits ["a", "b"]`,
	} {
		if !strings.Contains(formatted, present) {
			t.Errorf("canonical form should contain %q:\n%s", present, formatted)
		}
	}
}

func TestFormat_NumbersWithoutExponent(t *testing.T) {
	cfg := &model.Configuration{
		Name:     "Big",
		Currency: model.USD,
		Goals: []model.FundingGoal{
			{
				Name:    "G",
				Target:  model.Amount{Value: 1000000, Currency: model.USD},
				Current: model.ZeroAmount(model.USD),
			},
		},
	}

	formatted := mustFormat(t, cfg)

	if !strings.Contains(formatted, "target 1000000 USD") {
		t.Errorf("large values must render in plain decimal:\n%s", formatted)
	}

	if _, err := ParseString(formatted); err != nil {
		t.Errorf("formatted output does not parse: %v", err)
	}
}
