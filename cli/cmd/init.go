package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/fundl/lang"
	"github.com/ardnew/fundl/log"
	"github.com/ardnew/fundl/model"
)

// Init writes a starter funding document to build from.
type Init struct {
	Name   string `default:"My Project" help:"Project name for the generated document."`
	Handle string `default:"octocat"    help:"GitHub handle for the sample source and beneficiary."`
	Force  bool   `                     help:"Overwrite an existing file."                           short:"f"`

	Output string `arg:"" default:"FUNDING.fundl" help:"Destination file." name:"output"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if _, statErr := os.Stat(i.Output); statErr == nil && !i.Force {
		return ErrWriteOutput.
			With(slog.String("file", i.Output)).
			Wrap(ErrFileExists)
	}

	formatted, err := lang.Format(i.starter())
	if err != nil {
		return ErrFormat.Wrap(err).
			With(slog.String("name", i.Name))
	}

	if err := os.WriteFile(i.Output, []byte(formatted), defaultFileMode); err != nil {
		return ErrWriteOutput.
			With(slog.String("file", i.Output)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized funding document",
		slog.String("path", i.Output),
		slog.String("name", i.Name),
	)

	return nil
}

// starter builds the template configuration. It passes validation as
// generated, so "fundl check" succeeds on a fresh document.
func (i *Init) starter() *model.Configuration {
	return &model.Configuration{
		Name:        i.Name,
		Description: "Support the development of " + i.Name,
		Currency:    model.DefaultCurrency,
		Beneficiaries: []model.Beneficiary{
			{Name: i.Handle, GitHub: i.Handle},
		},
		Sources: []model.FundingSource{
			{
				Platform:   model.GitHubSponsors,
				Identifier: i.Handle,
				Type:       model.DefaultFundingType,
				Active:     true,
			},
		},
		Tiers: []model.FundingTier{
			{
				Name:        "Supporter",
				Amount:      model.Amount{Value: 5, Currency: model.DefaultCurrency},
				Description: "Every bit helps",
			},
		},
		Goals: []model.FundingGoal{
			{
				Name:        "Sustainability",
				Target:      model.Amount{Value: 100, Currency: model.DefaultCurrency},
				Current:     model.ZeroAmount(model.DefaultCurrency),
				Description: "Cover monthly development costs",
			},
		},
	}
}
