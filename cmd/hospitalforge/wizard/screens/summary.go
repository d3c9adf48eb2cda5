package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/components"
	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the previous screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionGenerate starts dataset generation
	SummaryActionGenerate
	// SummaryActionSaveConfig saves configuration to YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionGenerate   = "generate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true).
		MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	fileListStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	fileNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	cliCommandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
)

// outputFiles is the fixed set of files a run produces, in write order.
var outputFiles = []string{
	"patient_demographics.csv",
	"patient_admissions.csv",
	"medical_procedures.csv",
	"bed_inventory.csv",
	"bed_availability.csv",
	"bed_bookings.csv",
	"pharmacy_inventory.csv",
	"medication_orders.csv",
	"medication_dispensing.csv",
	"allied_health_services.csv",
	"manifest.yaml",
}

// SummaryScreen displays a summary of wizard configuration before generation
type SummaryScreen struct {
	form      *huh.Form
	state     *types.WizardState
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(state *types.WizardState) *SummaryScreen {
	s := &SummaryScreen{
		state:  state,
		action: actionGenerate, // Default action
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Generate dataset", actionGenerate),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Configuration")

	leftPanel := s.buildParameterSummary()
	rightPanel := s.buildOutputPreview()

	panelWidth := 45
	leftStyled := summaryPanelStyle.Width(panelWidth).Render(leftPanel)
	rightStyled := summaryPanelStyle.Width(panelWidth).Render(rightPanel)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStyled, "  ", rightStyled)

	cliSection := s.buildCLICommand()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		panels,
		"",
		cliSection,
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)

	return content
}

// buildParameterSummary builds the left panel showing parameter summary
func (s *SummaryScreen) buildParameterSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Configuration Summary"))
	sb.WriteString("\n\n")

	refDate := s.state.Population.ReferenceDate
	if refDate == "" {
		refDate = "default (2024-12-15)"
	}

	seed := fmt.Sprintf("%d", s.state.Population.Seed)
	if s.state.Population.Seed == 0 {
		seed = "auto (from output dir)"
	}

	params := []struct {
		label string
		value string
	}{
		{"Patients", fmt.Sprintf("%d", s.state.Population.Patients)},
		{"Seed", seed},
		{"Output Directory", s.state.Population.OutputDir},
		{"Reference Date", refDate},
		{"Active Admission Rate", formatFloat(s.state.Cohorts.ActiveAdmissionRate)},
		{"Historic Admission Rate", formatFloat(s.state.Cohorts.HistoricAdmissionRate)},
		{"Currently Admitted Rate", formatFloat(s.state.Cohorts.CurrentAdmissionRate)},
		{"Bed Window", fmt.Sprintf("%d days", s.state.Beds.WindowDays)},
		{"Occupancy (wk/wknd)", fmt.Sprintf("%s / %s",
			formatFloat(s.state.Beds.WeekdayOccupancy),
			formatFloat(s.state.Beds.WeekendOccupancy))},
	}

	for _, p := range params {
		sb.WriteString(summaryLabelStyle.Render(p.label + ": "))
		sb.WriteString(summaryValueStyle.Render(p.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildOutputPreview builds the right panel listing the files a run produces
func (s *SummaryScreen) buildOutputPreview() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Output Preview"))
	sb.WriteString("\n\n")

	sb.WriteString(fileNameStyle.Render(s.state.Population.OutputDir + "/"))
	sb.WriteString("\n")

	for i, name := range outputFiles {
		prefix := "├──"
		if i == len(outputFiles)-1 {
			prefix = "└──"
		}
		sb.WriteString(fileListStyle.Render(prefix))
		sb.WriteString(" ")
		sb.WriteString(fileNameStyle.Render(name))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildCLICommand builds the CLI command equivalent section
func (s *SummaryScreen) buildCLICommand() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Equivalent CLI Command"))
	sb.WriteString("\n\n")

	sb.WriteString(cliCommandStyle.Render(s.generateCLICommand()))

	return sb.String()
}

// generateCLICommand generates the equivalent CLI command from wizard state
func (s *SummaryScreen) generateCLICommand() string {
	var parts []string

	parts = append(parts, "hospitalforge")
	parts = append(parts, fmt.Sprintf("--patients %d", s.state.Population.Patients))

	if s.state.Population.Seed != 0 {
		parts = append(parts, fmt.Sprintf("--seed %d", s.state.Population.Seed))
	}
	if s.state.Population.OutputDir != "" && s.state.Population.OutputDir != "hospital_data" {
		parts = append(parts, fmt.Sprintf("--output %s", s.state.Population.OutputDir))
	}
	if s.state.Population.ReferenceDate != "" {
		parts = append(parts, fmt.Sprintf("--reference-date %s", s.state.Population.ReferenceDate))
	}
	if s.state.Beds.WindowDays != 0 && s.state.Beds.WindowDays != 365 {
		parts = append(parts, fmt.Sprintf("--bed-window-days %d", s.state.Beds.WindowDays))
	}

	return strings.Join(parts, " ")
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionGenerate:
		return SummaryActionGenerate
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionGenerate
	}
}
