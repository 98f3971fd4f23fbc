package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// bittrackHuhTheme returns a huh theme using the formatter palette.
func bittrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectOptions lists active projects first, then the rest, as picker options.
func projectOptions(ctx context.Context, app *App) ([]huh.Option[string], error) {
	resp, err := app.Projects.List(ctx, contract.ProjectListRequest{})
	if err != nil {
		return nil, err
	}

	options := make([]huh.Option[string], 0, len(resp.Projects))
	for _, active := range []bool{true, false} {
		for _, s := range resp.Projects {
			if (s.Project.Status == domain.ProjectActive) != active {
				continue
			}
			label := fmt.Sprintf("%s (%s)", s.Project.Title, formatter.ProjectStatusLabel(s.Project.Status).Text)
			options = append(options, huh.NewOption(label, s.Project.ID))
		}
	}
	return options, nil
}

// pickProject asks the user to choose a project.
func pickProject(ctx context.Context, app *App) (string, error) {
	options, err := projectOptions(ctx, app)
	if err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no projects to choose from")
	}

	var projectID string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which project?").
				Options(options...).
				Value(&projectID),
		),
	).WithTheme(bittrackHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return projectID, nil
}

// pickTheme asks the user to choose a theme, starting from current.
func pickTheme(ctx context.Context, current domain.Theme) (domain.Theme, error) {
	options := make([]huh.Option[domain.Theme], 0, len(domain.Themes))
	for _, th := range domain.Themes {
		options = append(options, huh.NewOption(formatter.ThemeLabel(th).Text, th))
	}

	choice := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Theme]().
				Title("Theme").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(bittrackHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return current, err
	}
	return choice, nil
}
