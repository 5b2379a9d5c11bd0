package lang

import (
	"slices"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/fundl/model"
)

// The builder walks the parse tree top-down and constructs the entity
// graph. It resolves enum literals against their closed vocabularies,
// coerces numeric tokens, and fills defaults. It performs no cross-entity
// checks: uniqueness and business rules belong to [model.Validate]. Only
// this-element malformations fail here, and they fail fast.

// maxSuggestions bounds the "did you mean" candidates on enum errors.
const maxSuggestions = 3

// Build constructs the entity graph from a parse tree.
func Build(node *ConfigurationNode) (*model.Configuration, error) {
	b := &builder{}

	return b.buildConfiguration(node)
}

type builder struct{}

func (b *builder) buildConfiguration(node *ConfigurationNode) (*model.Configuration, error) {
	cfg := &model.Configuration{
		Name:     node.Name.Text,
		Currency: model.DefaultCurrency,
	}

	block := `funding "` + node.Name.Text + `"`

	if err := rejectDuplicates(block, node.Props); err != nil {
		return nil, err
	}

	// Resolve the preferred currency first: min_amount and max_amount are
	// denominated in it regardless of property order.
	for _, prop := range node.Props {
		if prop.Keyword.Text != "currency" {
			continue
		}

		currency, err := b.resolveCurrency(block, prop)
		if err != nil {
			return nil, err
		}

		cfg.Currency = currency
	}

	for _, prop := range node.Props {
		switch prop.Keyword.Text {
		case "description":
			cfg.Description = prop.Value.Token.Text

		case "min_amount":
			amount, err := b.limitAmount(block, prop, cfg.Currency)
			if err != nil {
				return nil, err
			}

			cfg.MinAmount = amount

		case "max_amount":
			amount, err := b.limitAmount(block, prop, cfg.Currency)
			if err != nil {
				return nil, err
			}

			cfg.MaxAmount = amount
		}
	}

	for _, blk := range node.Blocks {
		err := b.buildBlock(cfg, blk)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (b *builder) buildBlock(cfg *model.Configuration, blk *BlockNode) error {
	for _, elem := range blk.Elements {
		var err error

		switch blk.Keyword.Text {
		case "beneficiaries":
			err = b.buildBeneficiary(cfg, elem)
		case "sources":
			err = b.buildSource(cfg, elem)
		case "tiers":
			err = b.buildTier(cfg, elem)
		case "goals":
			err = b.buildGoal(cfg, elem)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) buildBeneficiary(cfg *model.Configuration, elem *ElementNode) error {
	if err := rejectDuplicates(elem.Describe(), elem.Props); err != nil {
		return err
	}

	ben := model.Beneficiary{Name: elem.Name.Text}

	for _, prop := range elem.Props {
		switch prop.Keyword.Text {
		case "email":
			ben.Email = prop.Value.Token.Text
		case "github":
			ben.GitHub = prop.Value.Token.Text
		case "website":
			ben.Website = prop.Value.Token.Text
		case "description":
			ben.Description = prop.Value.Token.Text
		}
	}

	cfg.Beneficiaries = append(cfg.Beneficiaries, ben)

	return nil
}

func (b *builder) buildSource(cfg *model.Configuration, elem *ElementNode) error {
	block := elem.Describe()

	platform, ok := model.ParsePlatform(elem.Keyword.Text)
	if !ok {
		return &BuildError{
			Err:     ErrUnknownEnumValue,
			Block:   block,
			Suggest: suggest(elem.Keyword.Text, slices.Collect(model.Platforms())),
			Pos:     elem.Keyword.Pos,
		}
	}

	if err := rejectDuplicates(block, elem.Props); err != nil {
		return err
	}

	src := model.FundingSource{
		Platform:   platform,
		Identifier: elem.Name.Text,
		Type:       model.DefaultFundingType,
		Active:     true,
	}

	for _, prop := range elem.Props {
		switch prop.Keyword.Text {
		case "type":
			fundingType, ok := model.ParseFundingType(prop.Value.Token.Text)
			if !ok {
				return &BuildError{
					Err:      ErrUnknownEnumValue,
					Block:    block,
					Property: "type",
					Suggest:  suggest(prop.Value.Token.Text, slices.Collect(model.FundingTypes())),
					Pos:      prop.Value.Token.Pos,
				}
			}

			src.Type = fundingType

		case "active":
			src.Active = prop.Value.Token.Text == "true"

		case "url":
			src.URL = prop.Value.Token.Text

		case "config":
			pairs, err := b.buildConfigPairs(block, prop.Value)
			if err != nil {
				return err
			}

			src.Config = pairs
		}
	}

	// URL is a mandatory property of custom sources in the grammar, so
	// its absence is a build failure rather than a validator finding.
	if platform == model.Custom && src.URL == "" {
		return &BuildError{
			Err:      ErrMissingProperty,
			Block:    block,
			Property: "url",
			Pos:      elem.Pos,
		}
	}

	cfg.Sources = append(cfg.Sources, src)

	return nil
}

func (b *builder) buildConfigPairs(block string, value *ValueNode) ([]model.ConfigPair, error) {
	pairs := make([]model.ConfigPair, 0, len(value.Pairs))
	seen := make(map[string]bool, len(value.Pairs))

	for _, pair := range value.Pairs {
		if seen[pair.Key.Text] {
			return nil, &BuildError{
				Err:      ErrDuplicateKey,
				Block:    block,
				Property: pair.Key.Text,
				Pos:      pair.Key.Pos,
			}
		}

		seen[pair.Key.Text] = true

		pairs = append(pairs, model.ConfigPair{
			Key:   pair.Key.Text,
			Value: pair.Value.Text,
		})
	}

	return pairs, nil
}

func (b *builder) buildTier(cfg *model.Configuration, elem *ElementNode) error {
	block := elem.Describe()

	if err := rejectDuplicates(block, elem.Props); err != nil {
		return err
	}

	tier := model.FundingTier{Name: elem.Name.Text}
	hasAmount := false

	for _, prop := range elem.Props {
		switch prop.Keyword.Text {
		case "amount":
			amount, err := b.buildAmount(block, prop)
			if err != nil {
				return err
			}

			tier.Amount = amount
			hasAmount = true

		case "description":
			tier.Description = prop.Value.Token.Text

		case "max_sponsors":
			limit, err := b.positiveInt(block, prop)
			if err != nil {
				return err
			}

			tier.MaxSponsors = limit

		case "benefits":
			for _, tok := range prop.Value.List {
				tier.Benefits = append(tier.Benefits, tok.Text)
			}
		}
	}

	if !hasAmount {
		return &BuildError{
			Err:      ErrMissingProperty,
			Block:    block,
			Property: "amount",
			Pos:      elem.Pos,
		}
	}

	cfg.Tiers = append(cfg.Tiers, tier)

	return nil
}

func (b *builder) buildGoal(cfg *model.Configuration, elem *ElementNode) error {
	block := elem.Describe()

	if err := rejectDuplicates(block, elem.Props); err != nil {
		return err
	}

	goal := model.FundingGoal{Name: elem.Name.Text}

	var (
		hasTarget  bool
		hasCurrent bool
		currentPos Position
	)

	for _, prop := range elem.Props {
		switch prop.Keyword.Text {
		case "target":
			amount, err := b.buildAmount(block, prop)
			if err != nil {
				return err
			}

			goal.Target = amount
			hasTarget = true

		case "current":
			amount, err := b.buildAmount(block, prop)
			if err != nil {
				return err
			}

			goal.Current = amount
			hasCurrent = true
			currentPos = prop.Pos

		case "deadline":
			goal.Deadline = prop.Value.Token.Text

		case "description":
			goal.Description = prop.Value.Token.Text
		}
	}

	if !hasTarget {
		return &BuildError{
			Err:      ErrMissingProperty,
			Block:    block,
			Property: "target",
			Pos:      elem.Pos,
		}
	}

	if !hasCurrent {
		goal.Current = model.ZeroAmount(goal.Target.Currency)
	} else if goal.Current.Currency != goal.Target.Currency {
		return &BuildError{
			Err:      ErrCurrencyMismatch,
			Block:    block,
			Property: "current",
			Pos:      currentPos,
		}
	}

	cfg.Goals = append(cfg.Goals, goal)

	return nil
}

// buildAmount coerces a 'NUMBER CURRENCY' value, rejecting negative
// literals: no amount field in the grammar admits them.
func (b *builder) buildAmount(block string, prop *PropertyNode) (model.Amount, error) {
	value, err := b.number(block, prop)
	if err != nil {
		return model.Amount{}, err
	}

	if value < 0 {
		return model.Amount{}, &BuildError{
			Err:      ErrNegativeNumber,
			Block:    block,
			Property: prop.Keyword.Text,
			Pos:      prop.Value.Token.Pos,
		}
	}

	currency, err := b.resolveCurrencyToken(block, prop.Keyword.Text, prop.Value.Unit)
	if err != nil {
		return model.Amount{}, err
	}

	return model.Amount{Value: value, Currency: currency}, nil
}

// limitAmount coerces min_amount/max_amount, which are denominated in the
// configuration's preferred currency.
func (b *builder) limitAmount(
	block string,
	prop *PropertyNode,
	currency model.Currency,
) (*model.Amount, error) {
	value, err := b.number(block, prop)
	if err != nil {
		return nil, err
	}

	if value < 0 {
		return nil, &BuildError{
			Err:      ErrNegativeNumber,
			Block:    block,
			Property: prop.Keyword.Text,
			Pos:      prop.Value.Token.Pos,
		}
	}

	return &model.Amount{Value: value, Currency: currency}, nil
}

func (b *builder) number(block string, prop *PropertyNode) (float64, error) {
	value, err := strconv.ParseFloat(prop.Value.Token.Text, 64)
	if err != nil {
		return 0, &BuildError{
			Err:      ErrWrongLiteral,
			Block:    block,
			Property: prop.Keyword.Text,
			Pos:      prop.Value.Token.Pos,
		}
	}

	return value, nil
}

func (b *builder) positiveInt(block string, prop *PropertyNode) (int, error) {
	value, err := strconv.Atoi(prop.Value.Token.Text)
	if err != nil {
		return 0, &BuildError{
			Err:      ErrNotInteger,
			Block:    block,
			Property: prop.Keyword.Text,
			Pos:      prop.Value.Token.Pos,
		}
	}

	if value <= 0 {
		return 0, &BuildError{
			Err:      ErrNotPositive,
			Block:    block,
			Property: prop.Keyword.Text,
			Pos:      prop.Value.Token.Pos,
		}
	}

	return value, nil
}

func (b *builder) resolveCurrency(block string, prop *PropertyNode) (model.Currency, error) {
	return b.resolveCurrencyToken(block, prop.Keyword.Text, prop.Value.Token)
}

func (b *builder) resolveCurrencyToken(
	block, property string,
	tok Token,
) (model.Currency, error) {
	currency, ok := model.ParseCurrency(tok.Text)
	if !ok {
		return model.DefaultCurrency, &BuildError{
			Err:      ErrUnknownEnumValue,
			Block:    block,
			Property: property,
			Suggest:  suggest(tok.Text, slices.Collect(model.Currencies())),
			Pos:      tok.Pos,
		}
	}

	return currency, nil
}

// rejectDuplicates fails when a property keyword appears more than once
// in a single block. The grammar allows repetition structurally, so this
// is a this-element build check rather than a parse failure.
func rejectDuplicates(block string, props []*PropertyNode) error {
	seen := make(map[string]bool, len(props))

	for _, prop := range props {
		if seen[prop.Keyword.Text] {
			return &BuildError{
				Err:      ErrDuplicateProperty,
				Block:    block,
				Property: prop.Keyword.Text,
				Pos:      prop.Pos,
			}
		}

		seen[prop.Keyword.Text] = true
	}

	return nil
}

// suggest returns the closest vocabulary matches for an unresolved enum
// literal, best match first.
func suggest(word string, candidates []string) []string {
	matches := fuzzy.Find(word, candidates)

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
