package model

import (
	"fmt"
	"strings"
)

// Severity classifies a violation as blocking or advisory.
type Severity int

const (
	SeverityError   Severity = iota // error
	SeverityWarning                 // warning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Rule identifiers are stable strings so callers can match violations
// without parsing messages.
const (
	RuleBeneficiaryRequired    = "config/beneficiary-required"
	RuleSourceRequired         = "config/source-required"
	RuleActiveSourceRequired   = "config/active-source-required"
	RuleAmountRange            = "config/amount-range"
	RuleBeneficiaryUniqueName  = "beneficiary/unique-name"
	RuleSourceIdentifier       = "source/identifier-required"
	RuleCustomSourceURL        = "source/custom-url-required"
	RuleTideliftIdentifier     = "source/tidelift-identifier"
	RuleThanksDevIdentifier    = "source/thanks-dev-identifier"
	RuleTierUniqueName         = "tier/unique-name"
	RuleTierAmountPositive     = "tier/amount-positive"
	RuleGoalUniqueName         = "goal/unique-name"
	RuleGoalTargetPositive     = "goal/target-positive"
	RuleGoalCurrentNonNegative = "goal/current-non-negative"
	RuleGoalCurrencyMatch      = "goal/currency-match"
	RuleGoalOverfunded         = "goal/overfunded"
)

// EntityRef locates the entity a violation refers to. Kind is one of
// "configuration", "beneficiary", "source", "tier", or "goal"; Name is the
// entity's declared name (the identifier for sources).
type EntityRef struct {
	Kind string
	Name string
}

// String formats the reference as kind "name".
func (r EntityRef) String() string {
	if r.Name == "" {
		return r.Kind
	}

	return r.Kind + " " + quote(r.Name)
}

// Violation is one structured validator finding against a built
// configuration.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityRef
}

// String formats the violation for human-readable reports.
func (v Violation) String() string {
	return v.Severity.String() + " [" + v.Rule + "] " + v.Entity.String() +
		": " + v.Message
}

// HasErrors reports whether any violation in the list has error severity.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}

	return false
}

// tideliftPlatforms are the package ecosystems Tidelift recognizes in the
// platform-name/package-name identifier format.
//
//nolint:gochecknoglobals
var tideliftPlatforms = []string{
	"npm", "pypi", "rubygems", "maven", "packagist", "nuget",
}

// Validate runs every semantic rule over the configuration and returns the
// ordered, complete list of violations. An empty list means valid.
//
// Validate is a pure function: it never mutates its input, evaluates all
// rules without short-circuiting, and returns identical results for
// identical inputs.
func Validate(cfg *Configuration) []Violation {
	var vs []Violation

	ref := EntityRef{Kind: "configuration", Name: cfg.Name}

	if len(cfg.Beneficiaries) == 0 {
		vs = append(vs, Violation{
			Rule:     RuleBeneficiaryRequired,
			Severity: SeverityError,
			Message:  "at least one beneficiary is required",
			Entity:   ref,
		})
	}

	if len(cfg.Sources) == 0 {
		vs = append(vs, Violation{
			Rule:     RuleSourceRequired,
			Severity: SeverityError,
			Message:  "at least one funding source is required",
			Entity:   ref,
		})
	} else if !anyActive(cfg.Sources) {
		vs = append(vs, Violation{
			Rule:     RuleActiveSourceRequired,
			Severity: SeverityError,
			Message:  "at least one funding source must be active",
			Entity:   ref,
		})
	}

	vs = append(vs, validateLimits(cfg, ref)...)
	vs = append(vs, validateUnique(
		"beneficiary", RuleBeneficiaryUniqueName, beneficiaryNames(cfg))...)
	vs = append(vs, validateSources(cfg)...)
	vs = append(vs, validateUnique("tier", RuleTierUniqueName, tierNames(cfg))...)
	vs = append(vs, validateTiers(cfg)...)
	vs = append(vs, validateUnique("goal", RuleGoalUniqueName, goalNames(cfg))...)
	vs = append(vs, validateGoals(cfg)...)

	return vs
}

func anyActive(sources []FundingSource) bool {
	for _, s := range sources {
		if s.Active {
			return true
		}
	}

	return false
}

func validateLimits(cfg *Configuration, ref EntityRef) []Violation {
	if cfg.MinAmount == nil || cfg.MaxAmount == nil {
		return nil
	}

	order, err := cfg.MinAmount.Cmp(*cfg.MaxAmount)
	if err != nil {
		return []Violation{{
			Rule:     RuleAmountRange,
			Severity: SeverityError,
			Message: fmt.Sprintf("min_amount (%s) and max_amount (%s) use different currencies",
				cfg.MinAmount, cfg.MaxAmount),
			Entity: ref,
		}}
	}

	if order > 0 {
		return []Violation{{
			Rule:     RuleAmountRange,
			Severity: SeverityError,
			Message: fmt.Sprintf("min_amount (%s) exceeds max_amount (%s)",
				cfg.MinAmount, cfg.MaxAmount),
			Entity: ref,
		}}
	}

	return nil
}

// validateUnique emits exactly one violation per duplicated name,
// positioned at the first duplicate occurrence.
func validateUnique(kind, rule string, names []string) []Violation {
	var vs []Violation

	seen := make(map[string]bool, len(names))
	reported := make(map[string]bool)

	for _, name := range names {
		if seen[name] && !reported[name] {
			reported[name] = true

			vs = append(vs, Violation{
				Rule:     rule,
				Severity: SeverityError,
				Message:  kind + " name " + quote(name) + " is declared more than once",
				Entity:   EntityRef{Kind: kind, Name: name},
			})
		}

		seen[name] = true
	}

	return vs
}

func validateSources(cfg *Configuration) []Violation {
	var vs []Violation

	for _, s := range cfg.Sources {
		ref := EntityRef{Kind: "source", Name: s.Identifier}

		if s.Identifier == "" {
			vs = append(vs, Violation{
				Rule:     RuleSourceIdentifier,
				Severity: SeverityError,
				Message:  "identifier is required for " + s.Platform.String() + " source",
				Entity:   EntityRef{Kind: "source", Name: s.Platform.String()},
			})
		}

		switch s.Platform {
		case Custom:
			if s.URL == "" {
				vs = append(vs, Violation{
					Rule:     RuleCustomSourceURL,
					Severity: SeverityError,
					Message:  "url is required for custom sources",
					Entity:   ref,
				})
			}

		case Tidelift:
			vs = append(vs, validateTidelift(s, ref)...)

		case ThanksDev:
			if !strings.HasPrefix(s.Identifier, "u/gh/") {
				vs = append(vs, Violation{
					Rule:     RuleThanksDevIdentifier,
					Severity: SeverityError,
					Message:  "thanks_dev identifier must be in the form \"u/gh/username\"",
					Entity:   ref,
				})
			}
		}
	}

	return vs
}

func validateTidelift(s FundingSource, ref EntityRef) []Violation {
	platform, _, found := strings.Cut(s.Identifier, "/")
	if !found {
		return []Violation{{
			Rule:     RuleTideliftIdentifier,
			Severity: SeverityError,
			Message:  "tidelift identifier must be in the form \"platform-name/package-name\"",
			Entity:   ref,
		}}
	}

	for _, p := range tideliftPlatforms {
		if platform == p {
			return nil
		}
	}

	return []Violation{{
		Rule:     RuleTideliftIdentifier,
		Severity: SeverityError,
		Message: "tidelift platform name must be one of: " +
			strings.Join(tideliftPlatforms, ", "),
		Entity: ref,
	}}
}

func validateTiers(cfg *Configuration) []Violation {
	var vs []Violation

	for _, t := range cfg.Tiers {
		if t.Amount.Value <= 0 {
			vs = append(vs, Violation{
				Rule:     RuleTierAmountPositive,
				Severity: SeverityError,
				Message:  "tier amount must be positive, got " + t.Amount.String(),
				Entity:   EntityRef{Kind: "tier", Name: t.Name},
			})
		}
	}

	return vs
}

func validateGoals(cfg *Configuration) []Violation {
	var vs []Violation

	for _, g := range cfg.Goals {
		ref := EntityRef{Kind: "goal", Name: g.Name}

		if g.Target.Value <= 0 {
			vs = append(vs, Violation{
				Rule:     RuleGoalTargetPositive,
				Severity: SeverityError,
				Message:  "goal target must be positive, got " + g.Target.String(),
				Entity:   ref,
			})
		}

		if g.Current.Value < 0 {
			vs = append(vs, Violation{
				Rule:     RuleGoalCurrentNonNegative,
				Severity: SeverityError,
				Message:  "goal current amount must not be negative, got " + g.Current.String(),
				Entity:   ref,
			})
		}

		// The builder rejects mismatched currencies during parsing, but a
		// configuration assembled programmatically can still carry them.
		if g.Current.Currency != g.Target.Currency {
			vs = append(vs, Violation{
				Rule:     RuleGoalCurrencyMatch,
				Severity: SeverityError,
				Message: fmt.Sprintf("current (%s) and target (%s) use different currencies",
					g.Current, g.Target),
				Entity: ref,
			})

			continue
		}

		if g.Target.Value > 0 && g.Current.Value > g.Target.Value {
			vs = append(vs, Violation{
				Rule:     RuleGoalOverfunded,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("goal is over-funded at %.1f%% of target",
					g.Progress()),
				Entity: ref,
			})
		}
	}

	return vs
}

func beneficiaryNames(cfg *Configuration) []string {
	names := make([]string, len(cfg.Beneficiaries))
	for i, b := range cfg.Beneficiaries {
		names[i] = b.Name
	}

	return names
}

func tierNames(cfg *Configuration) []string {
	names := make([]string, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		names[i] = t.Name
	}

	return names
}

func goalNames(cfg *Configuration) []string {
	names := make([]string, len(cfg.Goals))
	for i, g := range cfg.Goals {
		names[i] = g.Name
	}

	return names
}

func quote(s string) string {
	return "\"" + s + "\""
}
