package wizard

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/components"
	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/screens"
	"github.com/rbotha/hospitalforge/internal/hospital"
	"github.com/rbotha/hospitalforge/internal/sink"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhasePopulation Phase = iota
	PhaseCohorts
	PhaseBeds
	PhaseSummary
	PhaseSaveConfig
	PhaseProgress
	PhaseComplete
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState

	// Current phase
	phase Phase

	// Screen instances
	populationScreen *screens.PopulationScreen
	cohortScreen     *screens.CohortScreen
	bedScreen        *screens.BedScreen
	summaryScreen    *screens.SummaryScreen
	progressScreen   *screens.ProgressScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		// Materialize the standard knobs so every form starts populated.
		state = FromGeneratorOptions(hospital.GeneratorOptions{
			Patients:  1000,
			OutputDir: "hospital_data",
		})
		state.Population.ReferenceDate = ""
	}

	w := &Wizard{
		state: state,
		phase: PhasePopulation,
	}

	w.populationScreen = screens.NewPopulationScreen(&w.state.Population)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.populationScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhasePopulation:
		return w.updatePopulation(msg)
	case PhaseCohorts:
		return w.updateCohorts(msg)
	case PhaseBeds:
		return w.updateBeds(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhasePopulation:
		return w.populationScreen.View()
	case PhaseCohorts:
		return w.cohortScreen.View()
	case PhaseBeds:
		return w.bedScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// updatePopulation handles updates in the population configuration phase.
func (w *Wizard) updatePopulation(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.populationScreen.Update(msg)
	if ps, ok := model.(*screens.PopulationScreen); ok {
		w.populationScreen = ps
	}

	if w.populationScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.populationScreen.Done() {
		w.phase = PhaseCohorts
		w.cohortScreen = screens.NewCohortScreen(&w.state.Cohorts)
		return w, w.cohortScreen.Init()
	}

	return w, cmd
}

// updateCohorts handles updates in the cohort configuration phase.
func (w *Wizard) updateCohorts(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.cohortScreen.Update(msg)
	if cs, ok := model.(*screens.CohortScreen); ok {
		w.cohortScreen = cs
	}

	if w.cohortScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.cohortScreen.Done() {
		w.phase = PhaseBeds
		w.bedScreen = screens.NewBedScreen(&w.state.Beds)
		return w, w.bedScreen.Init()
	}

	return w, cmd
}

// updateBeds handles updates in the bed configuration phase.
func (w *Wizard) updateBeds(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.bedScreen.Update(msg)
	if bs, ok := model.(*screens.BedScreen); ok {
		w.bedScreen = bs
	}

	if w.bedScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.bedScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			// Go back to the first screen
			w.phase = PhasePopulation
			w.populationScreen = screens.NewPopulationScreen(&w.state.Population)
			return w, w.populationScreen.Init()

		case screens.SummaryActionGenerate:
			return w.startGeneration()

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	w.configPath = "hospital-config.yaml"

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Go back to summary
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.state, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		// Go back to summary
		return w.transitionToSummary()
	}

	return w, cmd
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("Save Configuration")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)

	return content
}

// startGeneration begins the dataset generation process.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.phase = PhaseProgress
	w.progressScreen = screens.NewProgressScreen()

	// Run generation in a command and deliver the final result as a message
	return w, func() tea.Msg {
		startTime := time.Now()

		opts, err := ToGeneratorOptions(w.state)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}
		opts.Quiet = true // Suppress output for TUI integration

		ds, err := hospital.Generate(opts)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		csvSink := &sink.CSV{Dir: opts.OutputDir, Logger: zerolog.Nop()}
		if err := csvSink.Write(context.Background(), ds); err != nil {
			return screens.ErrorMsg{Error: fmt.Errorf("writing output: %w", err)}
		}

		totalRows := 0
		tables := ds.Tables()
		for _, tbl := range tables {
			totalRows += len(tbl.Rows)
		}

		return screens.CompletionMsg{
			TotalRows: totalRows,
			Tables:    len(tables),
			Duration:  time.Since(startTime),
			OutputDir: opts.OutputDir,
		}
	}
}

// updateProgress handles updates in the progress phase.
func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ProgressMsg:
		w.progressScreen.SetProgress(msg.Stage, msg.Current, msg.Total)
		return w, nil

	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*screens.ProgressScreen); ok {
		w.progressScreen = ps
	}

	if w.progressScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard for dataset generation configuration.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	// Create and run the wizard
	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	// Check final state
	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
