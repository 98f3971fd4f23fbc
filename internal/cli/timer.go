package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bittrack/internal/cli/formatter"
	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type timerKeyMap struct {
	Pause  key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Save, k.Cancel}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		Pause:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Save:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "stop & log")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "discard")),
	}
}

// timerModel is a focus stopwatch for one project. It ends either saved,
// meaning the elapsed time should be logged, or discarded.
type timerModel struct {
	project   string
	stopwatch stopwatch.Model
	keys      timerKeyMap
	help      help.Model
	saved     bool
	done      bool
}

func newTimerModel(projectTitle string) timerModel {
	return timerModel{
		project:   projectTitle,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		keys:      newTimerKeyMap(),
		help:      help.New(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			return m, m.stopwatch.Toggle()
		}
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m timerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Focus") + "  " + formatter.Bold(m.project) + "\n\n")
	b.WriteString("  " + formatter.StyleOrange.Render(formatter.Clock(timerMinutes(m.stopwatch.Elapsed()))))
	b.WriteString(formatter.Dim(fmt.Sprintf(":%02d", int(m.stopwatch.Elapsed().Seconds())%60)))
	if !m.stopwatch.Running() {
		b.WriteString("  " + formatter.StyleYellow.Render("paused"))
	}
	b.WriteString("\n\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// Minutes is the whole number of minutes on the stopwatch.
func (m timerModel) Minutes() int {
	return timerMinutes(m.stopwatch.Elapsed())
}

// timerMinutes truncates to whole minutes; partial minutes are not logged.
func timerMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

func newTimeTimerCmd(app *App) *cobra.Command {
	var (
		projectID   string
		issueID     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a focus stopwatch and log the elapsed time when stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.interactive() {
				return fmt.Errorf("the focus timer needs an interactive terminal; use `bittrack time log` instead")
			}

			if projectID == "" {
				picked, err := pickProject(ctx, app)
				if err != nil {
					return err
				}
				projectID = picked
			}
			detail, err := app.Projects.Show(ctx, projectID)
			if err != nil {
				return err
			}

			started := app.now()
			prog := tea.NewProgram(newTimerModel(detail.Summary.Project.Title),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("running timer: %w", err)
			}

			m, ok := final.(timerModel)
			if !ok || !m.saved {
				printOut(cmd, formatter.Dim("Timer discarded."))
				return nil
			}
			if m.Minutes() == 0 {
				printOut(cmd, formatter.Dim("Less than a minute elapsed; nothing logged."))
				return nil
			}

			return logTime(ctx, cmd, app, contract.LogTimeRequest{
				ProjectID:   projectID,
				IssueID:     issueID,
				Description: description,
				Minutes:     m.Minutes(),
				Date:        startOfDay(started),
			})
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID (picked interactively when omitted)")
	cmd.Flags().StringVar(&issueID, "issue", "", "Issue ID within the project")
	cmd.Flags().StringVarP(&description, "description", "d", "", "What you are working on")

	return cmd
}
