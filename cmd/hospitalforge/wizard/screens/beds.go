package screens

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/components"
	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"
)

// BedScreen configures the bed availability window
type BedScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.BedConfig
	width     int
	height    int
	done      bool
	cancelled bool

	windowDaysStr       string
	weekdayOccupancyStr string
	weekendOccupancyStr string
	outOfServiceStr     string
}

// NewBedScreen creates a new bed configuration screen
func NewBedScreen(config *types.BedConfig) *BedScreen {
	s := &BedScreen{
		helpPanel:           components.NewHelpPanel(),
		config:              config,
		windowDaysStr:       strconv.Itoa(config.WindowDays),
		weekdayOccupancyStr: formatFloat(config.WeekdayOccupancy),
		weekendOccupancyStr: formatFloat(config.WeekendOccupancy),
		outOfServiceStr:     formatFloat(config.OutOfServiceRate),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("bed_window_days").
				Title("Bed Window Days").
				Value(&s.windowDaysStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("weekday_occupancy").
				Title("Weekday Occupancy").
				Value(&s.weekdayOccupancyStr).
				Validate(validateRate),

			huh.NewInput().
				Key("weekend_occupancy").
				Title("Weekend Occupancy").
				Value(&s.weekendOccupancyStr).
				Validate(validateRate),

			huh.NewInput().
				Key("out_of_service_rate").
				Title("Out of Service Rate").
				Value(&s.outOfServiceStr).
				Validate(validateRate),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *BedScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *BedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *BedScreen) syncConfigFromForm() {
	if n, err := strconv.Atoi(s.windowDaysStr); err == nil {
		s.config.WindowDays = n
	}
	if f, err := strconv.ParseFloat(s.weekdayOccupancyStr, 64); err == nil {
		s.config.WeekdayOccupancy = f
	}
	if f, err := strconv.ParseFloat(s.weekendOccupancyStr, 64); err == nil {
		s.config.WeekendOccupancy = f
	}
	if f, err := strconv.ParseFloat(s.outOfServiceStr, 64); err == nil {
		s.config.OutOfServiceRate = f
	}
}

// View implements tea.Model
func (s *BedScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("HOSPITALFORGE WIZARD - Bed Availability")

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
func (s *BedScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *BedScreen) Cancelled() bool {
	return s.cancelled
}
