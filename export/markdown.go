package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/fundl/model"
)

// exportMarkdown renders a human-readable summary suitable for a
// project's SUPPORT or README section.
func exportMarkdown(w io.Writer, cfg *model.Configuration) error {
	var buf strings.Builder

	buf.WriteString("# Support " + cfg.Name + "\n")

	if cfg.Description != "" {
		buf.WriteString("\n" + cfg.Description + "\n")
	}

	writeBeneficiaries(&buf, cfg.Beneficiaries)
	writeSources(&buf, cfg)
	writeTiers(&buf, cfg.Tiers)
	writeGoals(&buf, cfg.Goals)

	_, err := io.WriteString(w, buf.String())

	return err
}

func writeBeneficiaries(buf *strings.Builder, bens []model.Beneficiary) {
	if len(bens) == 0 {
		return
	}

	buf.WriteString("\n## Beneficiaries\n\n")

	for _, ben := range bens {
		buf.WriteString("- **" + ben.Name + "**")

		if ben.GitHub != "" {
			buf.WriteString(" ([@" + ben.GitHub + "](https://github.com/" + ben.GitHub + "))")
		}

		if ben.Description != "" {
			buf.WriteString(": " + ben.Description)
		}

		buf.WriteString("\n")
	}
}

func writeSources(buf *strings.Builder, cfg *model.Configuration) {
	first := true

	for src := range cfg.ActiveSources() {
		if first {
			buf.WriteString("\n## Where to contribute\n\n")

			first = false
		}

		buf.WriteString("- **" + src.Platform.String() + "**: " + src.Identifier)

		if src.URL != "" {
			buf.WriteString(" (<" + src.URL + ">)")
		}

		if src.Type != model.Both {
			buf.WriteString(", " + strings.ReplaceAll(src.Type.String(), "_", "-") + " only")
		}

		buf.WriteString("\n")
	}
}

func writeTiers(buf *strings.Builder, tiers []model.FundingTier) {
	if len(tiers) == 0 {
		return
	}

	buf.WriteString("\n## Sponsorship tiers\n")

	for _, tier := range tiers {
		buf.WriteString("\n### " + tier.Name + " (" + tier.Amount.String() + ")\n")

		if tier.Description != "" {
			buf.WriteString("\n" + tier.Description + "\n")
		}

		if !tier.Unbounded() {
			fmt.Fprintf(buf, "\nLimited to %d sponsors.\n", tier.MaxSponsors)
		}

		if len(tier.Benefits) > 0 {
			buf.WriteString("\n")

			for _, benefit := range tier.Benefits {
				buf.WriteString("- " + benefit + "\n")
			}
		}
	}
}

func writeGoals(buf *strings.Builder, goals []model.FundingGoal) {
	if len(goals) == 0 {
		return
	}

	buf.WriteString("\n## Goals\n\n")

	for _, goal := range goals {
		fmt.Fprintf(buf, "- **%s**: %s of %s (%.1f%%)",
			goal.Name, goal.Current.String(), goal.Target.String(), goal.Progress())

		if goal.Deadline != "" {
			buf.WriteString(" by " + goal.Deadline)
		}

		if goal.Reached() {
			buf.WriteString(" ✓")
		}

		buf.WriteString("\n")
	}
}
