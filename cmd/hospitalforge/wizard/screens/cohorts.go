package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/components"
	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"
)

// CohortScreen configures the cohort rates and per-admission volumes
type CohortScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.CohortConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding
	activeRateStr    string
	historicRateStr  string
	currentRateStr   string
	procedureRateStr string
	medicationRateStr string
	alliedRateStr    string

	avgAdmissionsStr  string
	avgProceduresStr  string
	avgMedicationsStr string
	avgAlliedStr      string
}

// NewCohortScreen creates a new cohort configuration screen
func NewCohortScreen(config *types.CohortConfig) *CohortScreen {
	s := &CohortScreen{
		helpPanel:         components.NewHelpPanel(),
		config:            config,
		activeRateStr:     formatFloat(config.ActiveAdmissionRate),
		historicRateStr:   formatFloat(config.HistoricAdmissionRate),
		currentRateStr:    formatFloat(config.CurrentAdmissionRate),
		procedureRateStr:  formatFloat(config.ProcedureRate),
		medicationRateStr: formatFloat(config.MedicationRate),
		alliedRateStr:     formatFloat(config.AlliedHealthRate),
		avgAdmissionsStr:  formatFloat(config.AvgAdmissionsPerPatient),
		avgProceduresStr:  formatFloat(config.AvgProceduresPerAdmission),
		avgMedicationsStr: formatFloat(config.AvgMedicationsPerAdmission),
		avgAlliedStr:      formatFloat(config.AvgAlliedPerAdmission),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("active_admission_rate").
				Title("Active Admission Rate").
				Value(&s.activeRateStr).
				Validate(validateRate),

			huh.NewInput().
				Key("historic_admission_rate").
				Title("Historic Admission Rate").
				Value(&s.historicRateStr).
				Validate(validateRate),

			huh.NewInput().
				Key("current_admission_rate").
				Title("Current Admission Rate").
				Value(&s.currentRateStr).
				Validate(validateRate),

			huh.NewInput().
				Key("procedure_rate").
				Title("Procedure Rate").
				Value(&s.procedureRateStr).
				Validate(validateRate),

			huh.NewInput().
				Key("medication_rate").
				Title("Medication Rate").
				Value(&s.medicationRateStr).
				Validate(validateRate),

			huh.NewInput().
				Key("allied_health_rate").
				Title("Allied Health Rate").
				Value(&s.alliedRateStr).
				Validate(validateRate),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("avg_admissions").
				Title("Avg Admissions per Patient").
				Value(&s.avgAdmissionsStr).
				Validate(validateMean),

			huh.NewInput().
				Key("avg_procedures").
				Title("Avg Procedures per Admission").
				Value(&s.avgProceduresStr).
				Validate(validateMean),

			huh.NewInput().
				Key("avg_medications").
				Title("Avg Medications per Admission").
				Value(&s.avgMedicationsStr).
				Validate(validateMean),

			huh.NewInput().
				Key("avg_allied").
				Title("Avg Allied Services per Admission").
				Value(&s.avgAlliedStr).
				Validate(validateMean),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func validateRate(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

func validateMean(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}

// Init implements tea.Model
func (s *CohortScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *CohortScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to config
func (s *CohortScreen) syncConfigFromForm() {
	parse := func(str string, dst *float64) {
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			*dst = f
		}
	}
	parse(s.activeRateStr, &s.config.ActiveAdmissionRate)
	parse(s.historicRateStr, &s.config.HistoricAdmissionRate)
	parse(s.currentRateStr, &s.config.CurrentAdmissionRate)
	parse(s.procedureRateStr, &s.config.ProcedureRate)
	parse(s.medicationRateStr, &s.config.MedicationRate)
	parse(s.alliedRateStr, &s.config.AlliedHealthRate)
	parse(s.avgAdmissionsStr, &s.config.AvgAdmissionsPerPatient)
	parse(s.avgProceduresStr, &s.config.AvgProceduresPerAdmission)
	parse(s.avgMedicationsStr, &s.config.AvgMedicationsPerAdmission)
	parse(s.avgAlliedStr, &s.config.AvgAlliedPerAdmission)
}

// View implements tea.Model
func (s *CohortScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("HOSPITALFORGE WIZARD - Cohorts & Volumes")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *CohortScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *CohortScreen) Cancelled() bool {
	return s.cancelled
}
