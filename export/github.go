package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fundl/model"
)

// handles renders as a scalar when it holds one entry and as a flow list
// otherwise, matching the value forms GitHub accepts in FUNDING.yml.
type handles []string

// MarshalYAML implements yaml.InterfaceMarshaler.
func (h handles) MarshalYAML() (any, error) {
	if len(h) == 1 {
		return h[0], nil
	}

	return []string(h), nil
}

// fundingFile mirrors the FUNDING.yml schema. Field order follows the
// platform declaration order so output is stable.
type fundingFile struct {
	GitHub          handles `yaml:"github,omitempty"`
	Patreon         handles `yaml:"patreon,omitempty"`
	OpenCollective  handles `yaml:"open_collective,omitempty"`
	KoFi            handles `yaml:"ko_fi,omitempty"`
	BuyMeACoffee    handles `yaml:"buy_me_a_coffee,omitempty"`
	Liberapay       handles `yaml:"liberapay,omitempty"`
	Tidelift        handles `yaml:"tidelift,omitempty"`
	IssueHunt       handles `yaml:"issuehunt,omitempty"`
	CommunityBridge handles `yaml:"community_bridge,omitempty"`
	Polar           handles `yaml:"polar,omitempty"`
	ThanksDev       handles `yaml:"thanks_dev,omitempty"`
	Custom          handles `yaml:"custom,omitempty"`
}

// exportGitHub renders the active sources as a FUNDING.yml. Inactive
// sources are excluded; identifiers for the same platform collapse into
// one key.
func exportGitHub(w io.Writer, cfg *model.Configuration) error {
	var file fundingFile

	for src := range cfg.ActiveSources() {
		switch src.Platform {
		case model.GitHubSponsors:
			file.GitHub = append(file.GitHub, src.Identifier)
		case model.Patreon:
			file.Patreon = append(file.Patreon, src.Identifier)
		case model.OpenCollective:
			file.OpenCollective = append(file.OpenCollective, src.Identifier)
		case model.KoFi:
			file.KoFi = append(file.KoFi, src.Identifier)
		case model.BuyMeACoffee:
			file.BuyMeACoffee = append(file.BuyMeACoffee, src.Identifier)
		case model.Liberapay:
			file.Liberapay = append(file.Liberapay, src.Identifier)
		case model.Tidelift:
			file.Tidelift = append(file.Tidelift, src.Identifier)
		case model.IssueHunt:
			file.IssueHunt = append(file.IssueHunt, src.Identifier)
		case model.CommunityBridge:
			file.CommunityBridge = append(file.CommunityBridge, src.Identifier)
		case model.Polar:
			file.Polar = append(file.Polar, src.Identifier)
		case model.ThanksDev:
			file.ThanksDev = append(file.ThanksDev, src.Identifier)
		case model.PayPal:
			// FUNDING.yml has no paypal key; fold it into custom.
			file.Custom = append(file.Custom, paypalURL(src))
		case model.Custom:
			file.Custom = append(file.Custom, src.URL)
		}
	}

	data, err := yaml.MarshalWithOptions(&file, yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("marshal FUNDING.yml: %w", err)
	}

	if _, err := fmt.Fprintf(w, "# Funding links for %q\n", cfg.Name); err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func paypalURL(src model.FundingSource) string {
	if src.URL != "" {
		return src.URL
	}

	return "https://paypal.me/" + src.Identifier
}
