package model

import (
	"iter"
)

// Configuration is the root entity describing one project's complete
// funding setup. It exclusively owns all child entities; no entity
// outlives its configuration.
//
// Collections preserve the order in which elements were declared in the
// source document. Export formats are order-sensitive, so order is part
// of the contract.
type Configuration struct {
	Name          string
	Description   string
	Currency      Currency // preferred currency for min/max limits
	MinAmount     *Amount
	MaxAmount     *Amount
	Beneficiaries []Beneficiary
	Sources       []FundingSource
	Tiers         []FundingTier
	Goals         []FundingGoal
}

// Beneficiary is an individual or organization that receives funding.
type Beneficiary struct {
	Name        string
	Email       string
	GitHub      string // platform identity handle
	Website     string // stored verbatim, not validated as a URI
	Description string
}

// ConfigPair is one platform-specific key/value entry of a source.
// Pairs are ordered; keys are unique within one source.
type ConfigPair struct {
	Key   string
	Value string
}

// FundingSource is a funding channel tied to a platform (or a custom
// endpoint) through which money flows to beneficiaries.
type FundingSource struct {
	Platform   Platform
	Identifier string       // username, or free-form name for custom
	Type       FundingType  // defaults to Both
	Active     bool         // defaults to true
	URL        string       // required when Platform == Custom
	Config     []ConfigPair // ordered platform-specific configuration
}

// FundingTier is a named sponsorship level with a price and benefits.
type FundingTier struct {
	Name        string
	Amount      Amount
	Description string
	MaxSponsors int // 0 means unbounded
	Benefits    []string
}

// Unbounded reports whether the tier has no sponsor limit.
func (t FundingTier) Unbounded() bool {
	return t.MaxSponsors == 0
}

// FundingGoal is a funding target with tracked progress.
//
// Deadline is an opaque date string stored verbatim; the core does not
// parse or compare dates.
type FundingGoal struct {
	Name        string
	Target      Amount
	Current     Amount
	Deadline    string
	Description string
}

// Progress returns the percentage of the target reached by the current
// amount. Values above 100 are valid and signal over-funding; they are
// not capped here.
func (g FundingGoal) Progress() float64 {
	if g.Target.Value == 0 {
		return 0
	}

	return g.Current.Value / g.Target.Value * 100
}

// Reached reports whether the current amount meets or exceeds the target.
func (g FundingGoal) Reached() bool {
	return g.Current.Currency == g.Target.Currency &&
		g.Current.Value >= g.Target.Value
}

// WithCurrent returns a copy of the goal with its current amount replaced.
// This is the single mutation point for goal progress: the currency must
// match the target and the value must be non-negative, so the invariants
// established at build time cannot be broken by post-construction updates.
func (g FundingGoal) WithCurrent(a Amount) (FundingGoal, error) {
	if a.Currency != g.Target.Currency {
		return g, ErrCurrencyMismatch
	}

	if a.Value < 0 {
		return g, ErrNegativeAmount
	}

	g.Current = a

	return g, nil
}

// ActiveSources returns an iterator over sources whose active flag is set,
// in declaration order.
func (c *Configuration) ActiveSources() iter.Seq[FundingSource] {
	return func(yield func(FundingSource) bool) {
		for _, s := range c.Sources {
			if s.Active && !yield(s) {
				return
			}
		}
	}
}

// UnreachedGoals returns an iterator over goals that have not met their
// target, in declaration order.
func (c *Configuration) UnreachedGoals() iter.Seq[FundingGoal] {
	return func(yield func(FundingGoal) bool) {
		for _, g := range c.Goals {
			if !g.Reached() && !yield(g) {
				return
			}
		}
	}
}

// FindBeneficiary returns the first beneficiary with the given name.
func (c *Configuration) FindBeneficiary(name string) (Beneficiary, bool) {
	for _, b := range c.Beneficiaries {
		if b.Name == name {
			return b, true
		}
	}

	return Beneficiary{}, false
}

// FindTier returns the first tier with the given name.
func (c *Configuration) FindTier(name string) (FundingTier, bool) {
	for _, t := range c.Tiers {
		if t.Name == name {
			return t, true
		}
	}

	return FundingTier{}, false
}

// FindGoal returns the first goal with the given name.
func (c *Configuration) FindGoal(name string) (FundingGoal, bool) {
	for _, g := range c.Goals {
		if g.Name == name {
			return g, true
		}
	}

	return FundingGoal{}, false
}
