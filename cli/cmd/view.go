package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/fundl/log"
	"github.com/ardnew/fundl/model"
)

// View renders a funding document as an interactive terminal dashboard.
type View struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg, err := loadSource(v.Source)
	if err != nil {
		return ErrParseSource.Wrap(err).
			With(slog.String("source", v.Source))
	}

	log.TraceContext(ctx, "view start",
		slog.String("name", cfg.Name),
		slog.Int("goals", len(cfg.Goals)),
	)

	program := tea.NewProgram(newViewModel(cfg))

	_, err = program.Run()

	return err
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Strikethrough(true)
	reachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// defaultBarWidth is used before the first window size message arrives.
const defaultBarWidth = 40

// viewModel is the Bubble Tea model for the dashboard.
type viewModel struct {
	cfg  *model.Configuration
	bars []progress.Model
}

func newViewModel(cfg *model.Configuration) viewModel {
	bars := make([]progress.Model, len(cfg.Goals))
	for i := range cfg.Goals {
		bars[i] = progress.New(progress.WithDefaultGradient())
		bars[i].Width = defaultBarWidth
	}

	return viewModel{cfg: cfg, bars: bars}
}

// Init implements tea.Model.
func (m viewModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := min(msg.Width-4, 72)
		if width < 10 {
			width = 10
		}

		for i := range m.bars {
			m.bars[i].Width = width
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m viewModel) View() string {
	var buf strings.Builder

	buf.WriteString(titleStyle.Render(m.cfg.Name) + "\n")

	if m.cfg.Description != "" {
		buf.WriteString(dimStyle.Render(m.cfg.Description) + "\n")
	}

	m.renderSources(&buf)
	m.renderTiers(&buf)
	m.renderGoals(&buf)

	buf.WriteString("\n" + helpStyle.Render("press q to quit") + "\n")

	return buf.String()
}

func (m viewModel) renderSources(buf *strings.Builder) {
	if len(m.cfg.Sources) == 0 {
		return
	}

	buf.WriteString("\n" + sectionStyle.Render("Sources") + "\n")

	for _, src := range m.cfg.Sources {
		line := fmt.Sprintf("  %s  %s", src.Platform, src.Identifier)

		if src.Active {
			buf.WriteString(labelStyle.Render(line))
		} else {
			buf.WriteString(inactiveStyle.Render(line))
		}

		buf.WriteString(dimStyle.Render("  " + src.Type.String()))
		buf.WriteString("\n")
	}
}

func (m viewModel) renderTiers(buf *strings.Builder) {
	if len(m.cfg.Tiers) == 0 {
		return
	}

	buf.WriteString("\n" + sectionStyle.Render("Tiers") + "\n")

	for _, tier := range m.cfg.Tiers {
		line := fmt.Sprintf("  %-16s %s", tier.Name, tier.Amount)

		if !tier.Unbounded() {
			line += fmt.Sprintf("  (max %d sponsors)", tier.MaxSponsors)
		}

		buf.WriteString(labelStyle.Render(line) + "\n")
	}
}

func (m viewModel) renderGoals(buf *strings.Builder) {
	if len(m.cfg.Goals) == 0 {
		return
	}

	buf.WriteString("\n" + sectionStyle.Render("Goals") + "\n")

	for i, goal := range m.cfg.Goals {
		header := fmt.Sprintf("  %s  %s / %s", goal.Name, goal.Current, goal.Target)

		if goal.Reached() {
			buf.WriteString(reachedStyle.Render(header+"  reached") + "\n")
		} else {
			buf.WriteString(labelStyle.Render(header) + "\n")
		}

		ratio := goal.Progress() / 100
		if ratio > 1 {
			ratio = 1
		}

		buf.WriteString("  " + m.bars[i].ViewAs(ratio) + "\n")
	}
}
