package screens

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/components"
	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"
)

// PopulationScreen is the first wizard screen for the top-level settings
type PopulationScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.PopulationConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	patientsStr string
	seedStr     string
}

// NewPopulationScreen creates a new population configuration screen
func NewPopulationScreen(config *types.PopulationConfig) *PopulationScreen {
	// Set defaults if not provided
	if config.Patients == 0 {
		config.Patients = 1000
	}
	if config.OutputDir == "" {
		config.OutputDir = "hospital_data"
	}

	s := &PopulationScreen{
		helpPanel:   components.NewHelpPanel(),
		config:      config,
		patientsStr: strconv.Itoa(config.Patients),
		seedStr:     strconv.FormatInt(config.Seed, 10),
	}

	// Create form fields
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("patients").
				Title("Patients").
				Value(&s.patientsStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("seed").
				Title("Seed").
				Placeholder("0 = derive from output directory").
				Value(&s.seedStr).
				Validate(validateInt64),

			huh.NewInput().
				Key("output").
				Title("Output Directory").
				Value(&config.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("reference_date").
				Title("Reference Date").
				Placeholder("YYYY-MM-DD, empty for default").
				Value(&config.ReferenceDate).
				Validate(validateDate),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateInt64(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("must be YYYY-MM-DD")
	}
	return nil
}

// Init implements tea.Model
func (s *PopulationScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PopulationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	// Update form
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	// Check if form is complete
	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to config
func (s *PopulationScreen) syncConfigFromForm() {
	if n, err := strconv.Atoi(s.patientsStr); err == nil {
		s.config.Patients = n
	}
	if n, err := strconv.ParseInt(s.seedStr, 10, 64); err == nil {
		s.config.Seed = n
	}
}

// View implements tea.Model
func (s *PopulationScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("HOSPITALFORGE WIZARD - Population")

	formView := s.form.View()
	helpView := s.helpPanel.View()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		formView,
		"",
		helpView,
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *PopulationScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *PopulationScreen) Cancelled() bool {
	return s.cancelled
}

// Config returns the configured population settings
func (s *PopulationScreen) Config() *types.PopulationConfig {
	return s.config
}
