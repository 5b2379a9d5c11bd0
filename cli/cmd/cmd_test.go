package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/fundl/lang"
)

const sampleSource = `
funding "Demo Project" {
  currency USD

  beneficiaries {
    beneficiary "Alice" {
      github "alice"
    }
  }

  sources {
    github_sponsors "alice" {}
  }

  tiers {
    tier "Gold" {
      amount 25 USD
    }
  }

  goals {
    goal "Hosting" {
      target 100 USD
      current 20 USD
    }
  }
}
`

// overfundedSource is valid but triggers the overfunded goal warning.
const overfundedSource = `
funding "Demo Project" {
  currency USD

  beneficiaries {
    beneficiary "Alice" {
      github "alice"
    }
  }

  sources {
    github_sponsors "alice" {}
  }

  goals {
    goal "Hosting" {
      target 100 USD
      current 150 USD
    }
  }
}
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.fundl")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestCheckValid(t *testing.T) {
	check := &Check{Quiet: true, Source: writeTemp(t, sampleSource)}

	if err := check.Run(context.Background()); err != nil {
		t.Errorf("Check.Run() error = %v, want nil", err)
	}
}

func TestCheckParseError(t *testing.T) {
	check := &Check{Quiet: true, Source: writeTemp(t, `funding "Broken" {`)}

	err := check.Run(context.Background())
	if err == nil {
		t.Fatal("Check.Run() expected error for unterminated document")
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Errorf("Check.Run() error type = %T, want *Error", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	check := &Check{Quiet: true, Source: filepath.Join(t.TempDir(), "absent.fundl")}

	if err := check.Run(context.Background()); err == nil {
		t.Error("Check.Run() expected error for missing file")
	}
}

func TestCheckValidationError(t *testing.T) {
	source := `
funding "No Beneficiaries" {
  currency USD
}
`

	check := &Check{Quiet: true, Source: writeTemp(t, source)}

	if err := check.Run(context.Background()); err == nil {
		t.Error("Check.Run() expected error for config without beneficiaries")
	}
}

func TestCheckStrictWarnings(t *testing.T) {
	path := writeTemp(t, overfundedSource)

	relaxed := &Check{Quiet: true, Source: path}
	if err := relaxed.Run(context.Background()); err != nil {
		t.Errorf("Check.Run() error = %v, want nil for warning-only document", err)
	}

	strict := &Check{Strict: true, Quiet: true, Source: path}
	if err := strict.Run(context.Background()); err == nil {
		t.Error("Check.Run() with Strict expected error for warning-only document")
	}
}

func TestFmtWrite(t *testing.T) {
	path := writeTemp(t, sampleSource)

	cmd := &Fmt{Write: true, Source: path}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Fmt.Run() error = %v", err)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(first), `funding "Demo Project" {`) {
		t.Errorf("formatted output missing header:\n%s", first)
	}

	// A second pass must be a fixed point.
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Fmt.Run() second pass error = %v", err)
	}

	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("formatting is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestFmtWritePreservesBackslash(t *testing.T) {
	path := writeTemp(t, `funding "a\b" {
  currency USD
}
`)

	cmd := &Fmt{Write: true, Source: path}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Fmt.Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), `funding "a\b" {`) {
		t.Errorf("backslash must survive rewrite untouched:\n%s", data)
	}
}

func TestFmtWriteStdin(t *testing.T) {
	cmd := &Fmt{Write: true, Source: "-"}

	if err := cmd.Run(context.Background()); !errors.Is(err, ErrStdinWrite) {
		t.Errorf("Fmt.Run() error = %v, want ErrStdinWrite", err)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FUNDING.fundl")

	cmd := &Init{Name: "My Project", Handle: "octocat", Output: path}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Init.Run() error = %v", err)
	}

	// The generated document must itself pass check.
	check := &Check{Strict: true, Quiet: true, Source: path}
	if err := check.Run(context.Background()); err != nil {
		t.Errorf("generated document failed check: %v", err)
	}
}

func TestInitUnquotableName(t *testing.T) {
	cmd := &Init{
		Name:   `Bad "Name"`,
		Handle: "octocat",
		Output: filepath.Join(t.TempDir(), "FUNDING.fundl"),
	}

	if err := cmd.Run(context.Background()); !errors.Is(err, lang.ErrUnquotableString) {
		t.Errorf("Init.Run() error = %v, want ErrUnquotableString", err)
	}
}

func TestInitExisting(t *testing.T) {
	path := writeTemp(t, sampleSource)

	cmd := &Init{Name: "My Project", Handle: "octocat", Output: path}

	if err := cmd.Run(context.Background()); !errors.Is(err, ErrFileExists) {
		t.Errorf("Init.Run() error = %v, want ErrFileExists", err)
	}

	forced := &Init{Name: "My Project", Handle: "octocat", Force: true, Output: path}

	if err := forced.Run(context.Background()); err != nil {
		t.Errorf("Init.Run() with Force error = %v", err)
	}
}

func TestExportToFile(t *testing.T) {
	tests := []struct {
		format   string
		contains string
	}{
		{format: "github", contains: "github: alice"},
		{format: "json", contains: `"name": "Demo Project"`},
		{format: "yaml", contains: "name: Demo Project"},
		{format: "markdown", contains: "# Support Demo Project"},
	}

	source := writeTemp(t, sampleSource)

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out")

			cmd := &Export{Format: tt.format, Output: output, Source: source}

			if err := cmd.Run(context.Background()); err != nil {
				t.Fatalf("Export.Run() error = %v", err)
			}

			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}

			if !strings.Contains(string(data), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, data)
			}
		})
	}
}

func TestExportRejectsInvalid(t *testing.T) {
	source := `
funding "No Beneficiaries" {
  currency USD
}
`

	cmd := &Export{
		Format: "github",
		Output: filepath.Join(t.TempDir(), "out"),
		Source: writeTemp(t, source),
	}

	err := cmd.Run(context.Background())
	if !errors.As(err, new(*Error)) {
		t.Errorf("Export.Run() error = %v, want *Error for invalid config", err)
	}
}

func TestQueryCompileError(t *testing.T) {
	cmd := &Query{Expr: "((", Source: writeTemp(t, sampleSource)}

	err := cmd.Run(context.Background())
	if err == nil {
		t.Fatal("Query.Run() expected error for malformed expression")
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Errorf("Query.Run() error type = %T, want *Error", err)
	}
}
