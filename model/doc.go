// Package model defines the entity graph produced by parsing a funding
// configuration document, along with the semantic validator that checks a
// completed graph for cross-entity consistency.
//
// The root entity is [Configuration], which exclusively owns its ordered
// collections of [Beneficiary], [FundingSource], [FundingTier], and
// [FundingGoal] values. Entities are immutable once built; the single
// sanctioned mutation is [FundingGoal.WithCurrent], which returns a copy
// with an updated progress amount after enforcing the currency and sign
// invariants at that one point.
//
// Monetary values are represented by [Amount], a (value, currency) pair.
// Amounts are comparable only within a single currency; comparing across
// currencies is reported as an error rather than silently coerced.
//
// [Validate] runs the full battery of structural and business rules over a
// Configuration and returns an ordered list of [Violation] records. An
// empty list means the configuration is valid. Validation never mutates
// its input and never fails: invalidity is reported data, not an error.
package model
