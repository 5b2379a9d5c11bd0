package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ardnew/fundl/model"
)

func testConfig() *model.Configuration {
	return &model.Configuration{
		Name:     "My Project",
		Currency: model.USD,
		Beneficiaries: []model.Beneficiary{
			{Name: "Alice", GitHub: "alice"},
			{Name: "Bob"},
		},
		Sources: []model.FundingSource{
			{Platform: model.GitHubSponsors, Identifier: "alice", Type: model.Both, Active: true},
			{Platform: model.Patreon, Identifier: "alice", Type: model.Recurring, Active: false},
		},
		Tiers: []model.FundingTier{
			{Name: "Silver", Amount: model.Amount{Value: 5, Currency: model.USD}},
			{Name: "Gold", Amount: model.Amount{Value: 25, Currency: model.USD}, MaxSponsors: 10},
		},
		Goals: []model.FundingGoal{
			{
				Name:    "Server Costs",
				Target:  model.Amount{Value: 500, Currency: model.USD},
				Current: model.Amount{Value: 120, Currency: model.USD},
			},
			{
				Name:    "Docs",
				Target:  model.Amount{Value: 100, Currency: model.USD},
				Current: model.Amount{Value: 100, Currency: model.USD},
			},
		},
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  any
	}{
		{
			name:  "configuration name",
			query: "name",
			want:  "My Project",
		},
		{
			name:  "count beneficiaries",
			query: "len(beneficiaries)",
			want:  2,
		},
		{
			name:  "filter active sources",
			query: "filter(sources, .active) | map(.identifier)",
			want:  []any{"alice"},
		},
		{
			name:  "tier amounts",
			query: "map(tiers, .amount.value)",
			want:  []any{5.0, 25.0},
		},
		{
			name:  "unreached goal names",
			query: "filter(goals, not .reached) | map(.name)",
			want:  []any{"Server Costs"},
		},
		{
			name:  "goal progress",
			query: `first(filter(goals, .name == "Server Costs")).progress`,
			want:  24.0,
		},
		{
			name:  "any platform match",
			query: `any(sources, .platform == "patreon")`,
			want:  true,
		},
	}

	cfg := testConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(cfg, tt.query)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestEval_CompileError(t *testing.T) {
	_, err := Eval(testConfig(), "name ==")
	if !errors.Is(err, ErrCompile) {
		t.Errorf("expected ErrCompile, got %v", err)
	}
}

func TestEval_UnknownIdentifier(t *testing.T) {
	_, err := Eval(testConfig(), "nonexistent_field")
	if err == nil {
		t.Error("expected an error for unknown identifier")
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   string
	}{
		{name: "nil", result: nil, want: "null"},
		{name: "bool", result: true, want: "true"},
		{name: "int", result: 42, want: "42"},
		{name: "float", result: 24.5, want: "24.5"},
		{name: "string unquoted", result: "Server Costs", want: "Server Costs"},
		{name: "slice as JSON", result: []any{"a", "b"}, want: "[\n  \"a\",\n  \"b\"\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResult(tt.result); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
