package lang

import (
	"iter"

	"github.com/ardnew/fundl/model"
)

// The enum vocabularies are owned by the model package; the lexer and
// builder consume them here so the reserved word set and the resolution
// logic can never drift apart.

func platformKeywords() iter.Seq[string] {
	return model.Platforms()
}

func fundingTypeKeywords() iter.Seq[string] {
	return model.FundingTypes()
}

func currencyKeywords() iter.Seq[string] {
	return model.Currencies()
}
