package lang

import (
	"errors"
	"strings"
	"testing"
)

const sampleSource = `
funding "My Project" {
  description "An open source project"
  currency USD
  min_amount 1.0
  max_amount 1000

  beneficiaries {
    beneficiary "Alice" {
      email "alice@example.com"
      github "alice"
    }
  }

  sources {
    github_sponsors "alice" {
      type recurring
    }

    custom "My Shop" {
      url "https://shop.example.com"
      config {
        "region" "eu"
        "locale" "en"
      }
    }
  }

  tiers {
    tier "Gold" {
      amount 25 USD
      max_sponsors 10
      benefits ["Logo placement", "Priority support"]
    }
  }

  goals {
    goal "Server Costs" {
      target 500 USD
      current 120 USD
      deadline "2026-12-31"
    }
  }
}
`

func mustParse(t *testing.T, source string) *ConfigurationNode {
	t.Helper()

	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	node, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return node
}

func TestParse_Sample(t *testing.T) {
	node := mustParse(t, sampleSource)

	if node.Name.Text != "My Project" {
		t.Errorf("expected configuration name %q, got %q", "My Project", node.Name.Text)
	}

	if len(node.Props) != 4 {
		t.Errorf("expected 4 configuration properties, got %d", len(node.Props))
	}

	if len(node.Blocks) != 4 {
		t.Fatalf("expected 4 container blocks, got %d", len(node.Blocks))
	}

	sources := node.Block("sources")
	if sources == nil {
		t.Fatal("sources block not found")
	}

	if len(sources.Elements) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources.Elements))
	}

	custom := sources.Elements[1]
	if custom.Keyword.Text != "custom" || custom.Name.Text != "My Shop" {
		t.Errorf("unexpected second source: %s", custom.Describe())
	}

	var config *ValueNode

	for _, prop := range custom.Props {
		if prop.Keyword.Text == "config" {
			config = prop.Value
		}
	}

	if config == nil {
		t.Fatal("config property not found")
	}

	if len(config.Pairs) != 2 || config.Pairs[0].Key.Text != "region" {
		t.Errorf("config pairs out of order or missing: %v", config.Pairs)
	}
}

func TestParse_EmptyConfiguration(t *testing.T) {
	node := mustParse(t, `funding "Empty" {}`)

	if len(node.Props) != 0 || len(node.Blocks) != 0 {
		t.Errorf("expected empty configuration, got %d props, %d blocks",
			len(node.Props), len(node.Blocks))
	}
}

func TestParse_EmptyContainerBlocks(t *testing.T) {
	node := mustParse(t, `funding "P" { beneficiaries {} sources {} tiers {} goals {} }`)

	for _, block := range node.Blocks {
		if len(block.Elements) != 0 {
			t.Errorf("block %q: expected no elements, got %d",
				block.Keyword.Text, len(block.Elements))
		}
	}
}

func TestParse_AmountValue(t *testing.T) {
	node := mustParse(t, `funding "P" { tiers { tier "T" { amount 25.5 EUR } } }`)

	prop := node.Block("tiers").Elements[0].Props[0]

	if prop.Value.Kind != ValueAmount {
		t.Fatalf("expected amount value, got kind %d", prop.Value.Kind)
	}

	if prop.Value.Token.Text != "25.5" || prop.Value.Unit.Text != "EUR" {
		t.Errorf("expected 25.5 EUR, got %s %s", prop.Value.Token.Text, prop.Value.Unit.Text)
	}
}

func TestParse_EmptyList(t *testing.T) {
	node := mustParse(t, `funding "P" { tiers { tier "T" { amount 1 USD benefits [] } } }`)

	props := node.Block("tiers").Elements[0].Props
	if len(props[1].Value.List) != 0 {
		t.Errorf("expected empty benefits list, got %v", props[1].Value.List)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // substring of the Expected field
	}{
		{
			name:     "missing funding keyword",
			input:    `tier "T" {}`,
			expected: `"funding"`,
		},
		{
			name:     "missing configuration name",
			input:    `funding {}`,
			expected: "configuration name",
		},
		{
			name:     "missing opening brace",
			input:    `funding "P" description "d" }`,
			expected: `"{"`,
		},
		{
			name:     "unterminated configuration",
			input:    `funding "P" {`,
			expected: "configuration property or block",
		},
		{
			name:     "duplicate sources block",
			input:    `funding "P" { sources {} sources {} }`,
			expected: `at most one "sources" block`,
		},
		{
			name:     "duplicate goals block",
			input:    `funding "P" { goals {} tiers {} goals {} }`,
			expected: `at most one "goals" block`,
		},
		{
			name:     "element keyword outside its block",
			input:    `funding "P" { tier "T" {} }`,
			expected: "configuration property or block",
		},
		{
			name:     "wrong element keyword in block",
			input:    `funding "P" { tiers { goal "G" {} } }`,
			expected: `"tier" element`,
		},
		{
			name:     "unknown property in tier",
			input:    `funding "P" { tiers { tier "T" { email "x" } } }`,
			expected: "tier property",
		},
		{
			name:     "number where string expected",
			input:    `funding "P" { description 42 }`,
			expected: "string literal",
		},
		{
			name:     "string where bool expected",
			input:    `funding "P" { sources { custom "C" { active "yes" } } }`,
			expected: "boolean literal",
		},
		{
			name:     "amount missing currency",
			input:    `funding "P" { tiers { tier "T" { amount 25 } } }`,
			expected: "currency code",
		},
		{
			name:     "list trailing comma",
			input:    `funding "P" { tiers { tier "T" { amount 1 USD benefits ["a",] } } }`,
			expected: "string literal",
		},
		{
			name:     "map with dangling key",
			input:    `funding "P" { sources { custom "C" { url "u" config { "k" } } } }`,
			expected: "config value string",
		},
		{
			name:     "trailing tokens after close",
			input:    `funding "P" {} funding "Q" {}`,
			expected: "end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			_, err = Parse(tokens)
			if err == nil {
				t.Fatal("expected parse error, got none")
			}

			if !errors.Is(err, ErrUnexpectedToken) {
				t.Errorf("expected ErrUnexpectedToken, got %v", err)
			}

			pe := &ParseError{}
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}

			if !strings.Contains(pe.Expected, tt.expected) {
				t.Errorf("expected %q in %q", tt.expected, pe.Expected)
			}
		})
	}
}

func TestParse_StopsAtFirstError(t *testing.T) {
	// Both the tier and the goal below are malformed; only the first is
	// reported.
	input := `funding "P" {
  tiers { tier "T" { amount } }
  goals { goal "G" { target } }
}`

	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	_, err = Parse(tokens)

	pe := &ParseError{}
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	if pe.Pos.Line != 2 {
		t.Errorf("expected first error at line 2, got line %d", pe.Pos.Line)
	}
}
