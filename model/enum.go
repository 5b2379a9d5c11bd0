package model

import (
	"iter"
)

// Currency identifies one of the closed set of supported currencies.
type Currency int

const (
	USD Currency = iota // USD
	EUR                 // EUR
	GBP                 // GBP
	CAD                 // CAD
	AUD                 // AUD
)

// DefaultCurrency is used when a configuration does not declare a
// preferred currency.
const DefaultCurrency = USD

// String returns the currency code as it appears in source text.
func (c Currency) String() string {
	switch c {
	case USD:
		return "USD"
	case EUR:
		return "EUR"
	case GBP:
		return "GBP"
	case CAD:
		return "CAD"
	case AUD:
		return "AUD"
	default:
		return "USD"
	}
}

// ParseCurrency resolves a currency code against the closed vocabulary.
func ParseCurrency(s string) (Currency, bool) {
	switch s {
	case "USD":
		return USD, true
	case "EUR":
		return EUR, true
	case "GBP":
		return GBP, true
	case "CAD":
		return CAD, true
	case "AUD":
		return AUD, true
	default:
		return DefaultCurrency, false
	}
}

// Currencies returns an iterator over all supported currency codes.
func Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := USD; c <= AUD; c++ {
			if !yield(c.String()) {
				return
			}
		}
	}
}

// FundingType describes which payment arrangements a source accepts.
type FundingType int

const (
	OneTime   FundingType = iota // one_time
	Recurring                    // recurring
	Both                         // both
)

// DefaultFundingType is used when a source does not declare a type.
const DefaultFundingType = Both

// String returns the funding type keyword as it appears in source text.
func (t FundingType) String() string {
	switch t {
	case OneTime:
		return "one_time"
	case Recurring:
		return "recurring"
	case Both:
		return "both"
	default:
		return "both"
	}
}

// ParseFundingType resolves a funding type keyword against the closed
// vocabulary.
func ParseFundingType(s string) (FundingType, bool) {
	switch s {
	case "one_time":
		return OneTime, true
	case "recurring":
		return Recurring, true
	case "both":
		return Both, true
	default:
		return DefaultFundingType, false
	}
}

// FundingTypes returns an iterator over all funding type keywords.
func FundingTypes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for t := OneTime; t <= Both; t++ {
			if !yield(t.String()) {
				return
			}
		}
	}
}

// Platform identifies a funding platform from the fixed closed set.
// The Custom variant carries a free-form name on the owning source.
type Platform int

const (
	GitHubSponsors  Platform = iota // github_sponsors
	Patreon                         // patreon
	OpenCollective                  // open_collective
	KoFi                            // ko_fi
	BuyMeACoffee                    // buy_me_a_coffee
	Liberapay                       // liberapay
	PayPal                          // paypal
	Tidelift                        // tidelift
	IssueHunt                       // issuehunt
	CommunityBridge                 // community_bridge
	Polar                           // polar
	ThanksDev                       // thanks_dev
	Custom                          // custom
)

//nolint:gochecknoglobals
var platformKeyword = [...]string{
	GitHubSponsors:  "github_sponsors",
	Patreon:         "patreon",
	OpenCollective:  "open_collective",
	KoFi:            "ko_fi",
	BuyMeACoffee:    "buy_me_a_coffee",
	Liberapay:       "liberapay",
	PayPal:          "paypal",
	Tidelift:        "tidelift",
	IssueHunt:       "issuehunt",
	CommunityBridge: "community_bridge",
	Polar:           "polar",
	ThanksDev:       "thanks_dev",
	Custom:          "custom",
}

// String returns the platform keyword as it appears in source text.
func (p Platform) String() string {
	if p < GitHubSponsors || p > Custom {
		return "custom"
	}

	return platformKeyword[p]
}

// ParsePlatform resolves a platform keyword against the closed vocabulary.
func ParsePlatform(s string) (Platform, bool) {
	for p, kw := range platformKeyword {
		if kw == s {
			return Platform(p), true
		}
	}

	return Custom, false
}

// Platforms returns an iterator over all platform keywords in declaration
// order.
func Platforms() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, kw := range platformKeyword {
			if !yield(kw) {
				return
			}
		}
	}
}
