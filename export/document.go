package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fundl/model"
)

// The document schema is the machine-readable projection of a
// configuration, shared by the JSON and YAML exporters. Field order and
// names are part of the output contract.

type document struct {
	Name          string           `json:"name"                    yaml:"name"`
	Description   string           `json:"description,omitempty"   yaml:"description,omitempty"`
	Currency      string           `json:"currency"                yaml:"currency"`
	MinAmount     *amountDoc       `json:"min_amount,omitempty"    yaml:"min_amount,omitempty"`
	MaxAmount     *amountDoc       `json:"max_amount,omitempty"    yaml:"max_amount,omitempty"`
	Beneficiaries []beneficiaryDoc `json:"beneficiaries,omitempty" yaml:"beneficiaries,omitempty"`
	Sources       []sourceDoc      `json:"sources,omitempty"       yaml:"sources,omitempty"`
	Tiers         []tierDoc        `json:"tiers,omitempty"         yaml:"tiers,omitempty"`
	Goals         []goalDoc        `json:"goals,omitempty"         yaml:"goals,omitempty"`
}

type amountDoc struct {
	Value    float64 `json:"value"    yaml:"value"`
	Currency string  `json:"currency" yaml:"currency"`
}

type beneficiaryDoc struct {
	Name        string `json:"name"                  yaml:"name"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	GitHub      string `json:"github,omitempty"      yaml:"github,omitempty"`
	Website     string `json:"website,omitempty"     yaml:"website,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type sourceDoc struct {
	Platform   string    `json:"platform"         yaml:"platform"`
	Identifier string    `json:"identifier"       yaml:"identifier"`
	Type       string    `json:"type"             yaml:"type"`
	Active     bool      `json:"active"           yaml:"active"`
	URL        string    `json:"url,omitempty"    yaml:"url,omitempty"`
	Config     []pairDoc `json:"config,omitempty" yaml:"config,omitempty"`
}

type pairDoc struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type tierDoc struct {
	Name        string    `json:"name"                   yaml:"name"`
	Amount      amountDoc `json:"amount"                 yaml:"amount"`
	Description string    `json:"description,omitempty"  yaml:"description,omitempty"`
	MaxSponsors int       `json:"max_sponsors,omitempty" yaml:"max_sponsors,omitempty"`
	Benefits    []string  `json:"benefits,omitempty"     yaml:"benefits,omitempty"`
}

type goalDoc struct {
	Name        string    `json:"name"                  yaml:"name"`
	Target      amountDoc `json:"target"                yaml:"target"`
	Current     amountDoc `json:"current"               yaml:"current"`
	Progress    float64   `json:"progress"              yaml:"progress"`
	Reached     bool      `json:"reached"               yaml:"reached"`
	Deadline    string    `json:"deadline,omitempty"    yaml:"deadline,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

func buildDocument(cfg *model.Configuration) document {
	doc := document{
		Name:        cfg.Name,
		Description: cfg.Description,
		Currency:    cfg.Currency.String(),
		MinAmount:   amountRef(cfg.MinAmount),
		MaxAmount:   amountRef(cfg.MaxAmount),
	}

	for _, ben := range cfg.Beneficiaries {
		doc.Beneficiaries = append(doc.Beneficiaries, beneficiaryDoc{
			Name:        ben.Name,
			Email:       ben.Email,
			GitHub:      ben.GitHub,
			Website:     ben.Website,
			Description: ben.Description,
		})
	}

	for _, src := range cfg.Sources {
		entry := sourceDoc{
			Platform:   src.Platform.String(),
			Identifier: src.Identifier,
			Type:       src.Type.String(),
			Active:     src.Active,
			URL:        src.URL,
		}

		for _, pair := range src.Config {
			entry.Config = append(entry.Config, pairDoc{Key: pair.Key, Value: pair.Value})
		}

		doc.Sources = append(doc.Sources, entry)
	}

	for _, tier := range cfg.Tiers {
		doc.Tiers = append(doc.Tiers, tierDoc{
			Name:        tier.Name,
			Amount:      amountOf(tier.Amount),
			Description: tier.Description,
			MaxSponsors: tier.MaxSponsors,
			Benefits:    tier.Benefits,
		})
	}

	for _, goal := range cfg.Goals {
		doc.Goals = append(doc.Goals, goalDoc{
			Name:        goal.Name,
			Target:      amountOf(goal.Target),
			Current:     amountOf(goal.Current),
			Progress:    goal.Progress(),
			Reached:     goal.Reached(),
			Deadline:    goal.Deadline,
			Description: goal.Description,
		})
	}

	return doc
}

func amountOf(a model.Amount) amountDoc {
	return amountDoc{Value: a.Value, Currency: a.Currency.String()}
}

func amountRef(a *model.Amount) *amountDoc {
	if a == nil {
		return nil
	}

	doc := amountOf(*a)

	return &doc
}

func exportJSON(w io.Writer, cfg *model.Configuration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(buildDocument(cfg)); err != nil {
		return fmt.Errorf("marshal JSON document: %w", err)
	}

	return nil
}

func exportYAML(w io.Writer, cfg *model.Configuration) error {
	data, err := yaml.MarshalWithOptions(buildDocument(cfg), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("marshal YAML document: %w", err)
	}

	_, err = w.Write(data)

	return err
}
