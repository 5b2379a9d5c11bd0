package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/fundl/model"
)

func testConfig() *model.Configuration {
	return &model.Configuration{
		Name:        "My Project",
		Description: "An open source project",
		Currency:    model.USD,
		Beneficiaries: []model.Beneficiary{
			{Name: "Alice", GitHub: "alice"},
		},
		Sources: []model.FundingSource{
			{Platform: model.GitHubSponsors, Identifier: "alice", Type: model.Both, Active: true},
			{Platform: model.GitHubSponsors, Identifier: "bob", Type: model.Both, Active: true},
			{Platform: model.Patreon, Identifier: "alice", Type: model.Recurring, Active: true},
			{Platform: model.KoFi, Identifier: "alice", Type: model.Both, Active: false},
			{
				Platform: model.Custom, Identifier: "Shop", Type: model.OneTime,
				Active: true, URL: "https://shop.example.com",
			},
		},
		Tiers: []model.FundingTier{
			{
				Name:        "Gold",
				Amount:      model.Amount{Value: 25, Currency: model.USD},
				MaxSponsors: 10,
				Benefits:    []string{"Logo placement"},
			},
		},
		Goals: []model.FundingGoal{
			{
				Name:     "Server Costs",
				Target:   model.Amount{Value: 500, Currency: model.USD},
				Current:  model.Amount{Value: 120, Currency: model.USD},
				Deadline: "2026-12-31",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for name := range Formats() {
		format, ok := ParseFormat(name)
		if !ok {
			t.Errorf("ParseFormat(%q) not recognized", name)
		}

		if format.String() != name {
			t.Errorf("round trip failed: %q != %q", format.String(), name)
		}
	}

	if _, ok := ParseFormat("toml"); ok {
		t.Error("toml should not be a recognized format")
	}
}

func TestExport_RejectsInvalid(t *testing.T) {
	cfg := testConfig()
	cfg.Beneficiaries = nil

	var buf bytes.Buffer

	err := Export(&buf, cfg, GitHub)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	if !strings.Contains(err.Error(), "beneficiary") {
		t.Errorf("error should name the failed rule: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", buf.String())
	}
}

func TestExport_WarningsDoNotBlock(t *testing.T) {
	cfg := testConfig()
	cfg.Goals[0].Current = model.Amount{Value: 700, Currency: model.USD}

	var buf bytes.Buffer
	if err := Export(&buf, cfg, GitHub); err != nil {
		t.Fatalf("over-funded goal is a warning, export failed: %v", err)
	}
}

func TestExport_GitHub(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testConfig(), GitHub); err != nil {
		t.Fatalf("export error: %v", err)
	}

	out := buf.String()

	// Two github_sponsors identifiers collapse into a list.
	if !strings.Contains(out, "github:") {
		t.Errorf("missing github key:\n%s", out)
	}

	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("missing github identifiers:\n%s", out)
	}

	// One patreon identifier renders as a scalar.
	if !strings.Contains(out, "patreon: alice") {
		t.Errorf("single identifier should render as a scalar:\n%s", out)
	}

	// The inactive ko_fi source is excluded.
	if strings.Contains(out, "ko_fi") {
		t.Errorf("inactive source must not appear:\n%s", out)
	}

	// Custom sources contribute their URL.
	if !strings.Contains(out, "custom: https://shop.example.com") {
		t.Errorf("custom source should contribute its URL:\n%s", out)
	}
}

func TestExport_GitHubPayPalFoldsIntoCustom(t *testing.T) {
	cfg := testConfig()
	cfg.Sources = []model.FundingSource{
		{Platform: model.PayPal, Identifier: "alice", Type: model.Both, Active: true},
	}

	var buf bytes.Buffer
	if err := Export(&buf, cfg, GitHub); err != nil {
		t.Fatalf("export error: %v", err)
	}

	if !strings.Contains(buf.String(), "custom: https://paypal.me/alice") {
		t.Errorf("paypal should fold into a custom URL:\n%s", buf.String())
	}
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testConfig(), JSON); err != nil {
		t.Fatalf("export error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["name"] != "My Project" || doc["currency"] != "USD" {
		t.Errorf("unexpected document header: %v", doc)
	}

	goals, ok := doc["goals"].([]any)
	if !ok || len(goals) != 1 {
		t.Fatalf("expected one goal, got %v", doc["goals"])
	}

	goal, ok := goals[0].(map[string]any)
	if !ok {
		t.Fatalf("unexpected goal shape: %v", goals[0])
	}

	if goal["progress"] != 24.0 {
		t.Errorf("expected progress 24, got %v", goal["progress"])
	}

	if goal["reached"] != false {
		t.Errorf("expected reached false, got %v", goal["reached"])
	}

	sources, ok := doc["sources"].([]any)
	if !ok || len(sources) != 5 {
		t.Errorf("document export includes inactive sources, got %v", doc["sources"])
	}
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testConfig(), YAML); err != nil {
		t.Fatalf("export error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"name: My Project",
		"currency: USD",
		"platform: github_sponsors",
		"2026-12-31",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in YAML output:\n%s", want, out)
		}
	}
}

func TestExport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testConfig(), Markdown); err != nil {
		t.Fatalf("export error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"# Support My Project",
		"## Beneficiaries",
		"[@alice](https://github.com/alice)",
		"## Where to contribute",
		"### Gold (25 USD)",
		"Limited to 10 sponsors.",
		"120 USD of 500 USD (24.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in Markdown output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "ko_fi") {
		t.Errorf("inactive source must not appear:\n%s", out)
	}
}
