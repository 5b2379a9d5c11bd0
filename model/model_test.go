package model

import (
	"errors"
	"math"
	"testing"
)

func TestFundingGoal_Progress(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{name: "partial", target: 500, current: 120, want: 24},
		{name: "reached", target: 500, current: 500, want: 100},
		{name: "over-funded uncapped", target: 100, current: 150, want: 150},
		{name: "zero target", target: 0, current: 50, want: 0},
		{name: "nothing raised", target: 500, current: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := FundingGoal{
				Name:    "G",
				Target:  Amount{Value: tt.target, Currency: USD},
				Current: Amount{Value: tt.current, Currency: USD},
			}

			if got := goal.Progress(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %.2f%%, got %.2f%%", tt.want, got)
			}
		})
	}
}

func TestFundingGoal_Reached(t *testing.T) {
	goal := FundingGoal{
		Target:  Amount{Value: 100, Currency: USD},
		Current: Amount{Value: 100, Currency: USD},
	}

	if !goal.Reached() {
		t.Error("goal at exactly 100% should be reached")
	}

	goal.Current.Value = 99
	if goal.Reached() {
		t.Error("goal below target should not be reached")
	}
}

func TestFundingGoal_WithCurrent(t *testing.T) {
	goal := FundingGoal{
		Name:    "G",
		Target:  Amount{Value: 100, Currency: EUR},
		Current: ZeroAmount(EUR),
	}

	updated, err := goal.WithCurrent(Amount{Value: 40, Currency: EUR})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Current.Value != 40 {
		t.Errorf("expected current 40, got %v", updated.Current)
	}

	// The receiver is a value; the original goal is untouched.
	if goal.Current.Value != 0 {
		t.Errorf("original goal mutated: %v", goal.Current)
	}
}

func TestFundingGoal_WithCurrentRejects(t *testing.T) {
	goal := FundingGoal{
		Target:  Amount{Value: 100, Currency: EUR},
		Current: ZeroAmount(EUR),
	}

	_, err := goal.WithCurrent(Amount{Value: 10, Currency: USD})
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}

	_, err = goal.WithCurrent(Amount{Value: -1, Currency: EUR})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestFundingTier_Unbounded(t *testing.T) {
	if !(FundingTier{}).Unbounded() {
		t.Error("tier without max_sponsors should be unbounded")
	}

	if (FundingTier{MaxSponsors: 5}).Unbounded() {
		t.Error("tier with max_sponsors should be bounded")
	}
}

func TestConfiguration_ActiveSources(t *testing.T) {
	cfg := &Configuration{
		Sources: []FundingSource{
			{Platform: GitHubSponsors, Identifier: "a", Active: true},
			{Platform: Patreon, Identifier: "b", Active: false},
			{Platform: KoFi, Identifier: "c", Active: true},
		},
	}

	var got []string
	for s := range cfg.ActiveSources() {
		got = append(got, s.Identifier)
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("expected active sources [a c], got %v", got)
	}
}

func TestConfiguration_UnreachedGoals(t *testing.T) {
	cfg := &Configuration{
		Goals: []FundingGoal{
			{
				Name:    "done",
				Target:  Amount{Value: 100, Currency: USD},
				Current: Amount{Value: 100, Currency: USD},
			},
			{
				Name:    "pending",
				Target:  Amount{Value: 100, Currency: USD},
				Current: Amount{Value: 10, Currency: USD},
			},
		},
	}

	var got []string
	for g := range cfg.UnreachedGoals() {
		got = append(got, g.Name)
	}

	if len(got) != 1 || got[0] != "pending" {
		t.Errorf("expected [pending], got %v", got)
	}
}

func TestConfiguration_Find(t *testing.T) {
	cfg := &Configuration{
		Beneficiaries: []Beneficiary{{Name: "Alice"}},
		Tiers:         []FundingTier{{Name: "Gold"}},
		Goals:         []FundingGoal{{Name: "Server"}},
	}

	if _, ok := cfg.FindBeneficiary("Alice"); !ok {
		t.Error("expected to find beneficiary Alice")
	}

	if _, ok := cfg.FindTier("Silver"); ok {
		t.Error("did not expect to find tier Silver")
	}

	if _, ok := cfg.FindGoal("Server"); !ok {
		t.Error("expected to find goal Server")
	}
}

func TestParseEnums(t *testing.T) {
	if p, ok := ParsePlatform("github_sponsors"); !ok || p != GitHubSponsors {
		t.Errorf("ParsePlatform(github_sponsors) = %v, %v", p, ok)
	}

	if _, ok := ParsePlatform("github"); ok {
		t.Error("github is not a platform keyword")
	}

	if c, ok := ParseCurrency("GBP"); !ok || c != GBP {
		t.Errorf("ParseCurrency(GBP) = %v, %v", c, ok)
	}

	if _, ok := ParseCurrency("usd"); ok {
		t.Error("currency codes are case-sensitive")
	}

	if ft, ok := ParseFundingType("one_time"); !ok || ft != OneTime {
		t.Errorf("ParseFundingType(one_time) = %v, %v", ft, ok)
	}
}

func TestEnumIterators(t *testing.T) {
	var platforms []string
	for kw := range Platforms() {
		platforms = append(platforms, kw)
	}

	if len(platforms) != 13 {
		t.Errorf("expected 13 platforms, got %d: %v", len(platforms), platforms)
	}

	if platforms[0] != "github_sponsors" || platforms[12] != "custom" {
		t.Errorf("platform order changed: %v", platforms)
	}

	var currencies []string
	for code := range Currencies() {
		currencies = append(currencies, code)
	}

	if len(currencies) != 5 {
		t.Errorf("expected 5 currencies, got %v", currencies)
	}

	var types []string
	for kw := range FundingTypes() {
		types = append(types, kw)
	}

	if len(types) != 3 {
		t.Errorf("expected 3 funding types, got %v", types)
	}
}
