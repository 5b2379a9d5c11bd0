package lang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/fundl/model"
)

// indent is the canonical indentation unit, one level per nesting depth.
const indent = "  "

// Format renders the entity graph as canonical source text. The output
// is stable and round-trips: compiling it with [ParseString] yields an
// equal graph. Properties holding their default value (funding type
// "both", active "true", a zero current amount) are omitted, since the
// builder restores them.
//
// String literals carry no escape sequences, so strings are emitted raw
// between quotes. Any parsed configuration is representable. A
// programmatically built one whose strings contain a quote or newline
// is not, and Format reports it with [ErrUnquotableString].
func Format(cfg *model.Configuration) (string, error) {
	f := &formatter{}

	f.line(0, "funding ", f.quote(cfg.Name), " {")

	if cfg.Description != "" {
		f.property(1, "description", f.quote(cfg.Description))
	}

	f.property(1, "currency", cfg.Currency.String())

	if cfg.MinAmount != nil {
		f.property(1, "min_amount", formatNumber(cfg.MinAmount.Value))
	}

	if cfg.MaxAmount != nil {
		f.property(1, "max_amount", formatNumber(cfg.MaxAmount.Value))
	}

	f.beneficiaries(cfg.Beneficiaries)
	f.sources(cfg.Sources)
	f.tiers(cfg.Tiers)
	f.goals(cfg.Goals)

	f.line(0, "}")

	if f.err != nil {
		return "", f.err
	}

	return f.buf.String(), nil
}

type formatter struct {
	buf strings.Builder
	err error
}

// quote wraps s in double quotes verbatim. The lexer performs no escape
// processing, so a string containing a quote or newline has no literal
// form; the first such string is recorded in f.err.
func (f *formatter) quote(s string) string {
	if f.err == nil && strings.ContainsAny(s, "\"\n") {
		f.err = fmt.Errorf("%w: %s", ErrUnquotableString, strconv.Quote(s))
	}

	return `"` + s + `"`
}

func (f *formatter) beneficiaries(bens []model.Beneficiary) {
	if len(bens) == 0 {
		return
	}

	f.blank()
	f.line(1, "beneficiaries {")

	for i, ben := range bens {
		if i > 0 {
			f.blank()
		}

		f.line(2, "beneficiary ", f.quote(ben.Name), " {")

		if ben.Email != "" {
			f.property(3, "email", f.quote(ben.Email))
		}

		if ben.GitHub != "" {
			f.property(3, "github", f.quote(ben.GitHub))
		}

		if ben.Website != "" {
			f.property(3, "website", f.quote(ben.Website))
		}

		if ben.Description != "" {
			f.property(3, "description", f.quote(ben.Description))
		}

		f.line(2, "}")
	}

	f.line(1, "}")
}

func (f *formatter) sources(srcs []model.FundingSource) {
	if len(srcs) == 0 {
		return
	}

	f.blank()
	f.line(1, "sources {")

	for i, src := range srcs {
		if i > 0 {
			f.blank()
		}

		f.line(2, src.Platform.String(), " ", f.quote(src.Identifier), " {")

		if src.Type != model.DefaultFundingType {
			f.property(3, "type", src.Type.String())
		}

		if !src.Active {
			f.property(3, "active", "false")
		}

		if src.URL != "" {
			f.property(3, "url", f.quote(src.URL))
		}

		if len(src.Config) > 0 {
			f.line(3, "config {")

			for _, pair := range src.Config {
				f.line(4, f.quote(pair.Key), " ", f.quote(pair.Value))
			}

			f.line(3, "}")
		}

		f.line(2, "}")
	}

	f.line(1, "}")
}

func (f *formatter) tiers(tiers []model.FundingTier) {
	if len(tiers) == 0 {
		return
	}

	f.blank()
	f.line(1, "tiers {")

	for i, tier := range tiers {
		if i > 0 {
			f.blank()
		}

		f.line(2, "tier ", f.quote(tier.Name), " {")
		f.property(3, "amount", formatAmount(tier.Amount))

		if tier.Description != "" {
			f.property(3, "description", f.quote(tier.Description))
		}

		if !tier.Unbounded() {
			f.property(3, "max_sponsors", strconv.Itoa(tier.MaxSponsors))
		}

		if len(tier.Benefits) > 0 {
			quoted := make([]string, len(tier.Benefits))
			for j, benefit := range tier.Benefits {
				quoted[j] = f.quote(benefit)
			}

			f.property(3, "benefits", "["+strings.Join(quoted, ", ")+"]")
		}

		f.line(2, "}")
	}

	f.line(1, "}")
}

func (f *formatter) goals(goals []model.FundingGoal) {
	if len(goals) == 0 {
		return
	}

	f.blank()
	f.line(1, "goals {")

	for i, goal := range goals {
		if i > 0 {
			f.blank()
		}

		f.line(2, "goal ", f.quote(goal.Name), " {")
		f.property(3, "target", formatAmount(goal.Target))

		if !goal.Current.IsZero() {
			f.property(3, "current", formatAmount(goal.Current))
		}

		if goal.Deadline != "" {
			f.property(3, "deadline", f.quote(goal.Deadline))
		}

		if goal.Description != "" {
			f.property(3, "description", f.quote(goal.Description))
		}

		f.line(2, "}")
	}

	f.line(1, "}")
}

func (f *formatter) line(depth int, parts ...string) {
	for range depth {
		f.buf.WriteString(indent)
	}

	for _, part := range parts {
		f.buf.WriteString(part)
	}

	f.buf.WriteRune('\n')
}

func (f *formatter) property(depth int, keyword, value string) {
	f.line(depth, keyword, " ", value)
}

func (f *formatter) blank() {
	f.buf.WriteRune('\n')
}

func formatAmount(a model.Amount) string {
	return formatNumber(a.Value) + " " + a.Currency.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
