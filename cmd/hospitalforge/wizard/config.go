package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Population PopulationConfigYAML `yaml:"population"`
	Cohorts    CohortConfigYAML     `yaml:"cohorts"`
	Beds       BedConfigYAML        `yaml:"beds"`
}

// PopulationConfigYAML holds top-level settings with YAML tags for serialization.
type PopulationConfigYAML struct {
	Patients      int    `yaml:"patients"`
	Seed          int64  `yaml:"seed"`
	OutputDir     string `yaml:"output_dir"`
	ReferenceDate string `yaml:"reference_date,omitempty"`
}

// CohortConfigYAML holds cohort rates with YAML tags.
type CohortConfigYAML struct {
	ActiveAdmissionRate   float64 `yaml:"active_admission_rate"`
	HistoricAdmissionRate float64 `yaml:"historic_admission_rate"`
	CurrentAdmissionRate  float64 `yaml:"current_admission_rate"`

	ProcedureRate    float64 `yaml:"procedure_rate"`
	MedicationRate   float64 `yaml:"medication_rate"`
	AlliedHealthRate float64 `yaml:"allied_health_rate"`

	AvgAdmissionsPerPatient    float64 `yaml:"avg_admissions_per_patient"`
	AvgProceduresPerAdmission  float64 `yaml:"avg_procedures_per_admission"`
	AvgMedicationsPerAdmission float64 `yaml:"avg_medications_per_admission"`
	AvgAlliedPerAdmission      float64 `yaml:"avg_allied_per_admission"`
}

// BedConfigYAML holds bed window settings with YAML tags.
type BedConfigYAML struct {
	WindowDays       int     `yaml:"window_days"`
	WeekdayOccupancy float64 `yaml:"weekday_occupancy"`
	WeekendOccupancy float64 `yaml:"weekend_occupancy"`
	OutOfServiceRate float64 `yaml:"out_of_service_rate"`
}

// LoadFromYAML reads a wizard configuration from a YAML file.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return cfg.toState(), nil
}

// SaveToYAML writes the wizard state to a YAML file.
func SaveToYAML(state *WizardState, path string) error {
	data, err := yaml.Marshal(fromState(state))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c Config) toState() *WizardState {
	return &WizardState{
		Population: PopulationConfig(c.Population),
		Cohorts:    CohortConfig(c.Cohorts),
		Beds:       BedConfig(c.Beds),
	}
}

func fromState(s *WizardState) Config {
	return Config{
		Population: PopulationConfigYAML(s.Population),
		Cohorts:    CohortConfigYAML(s.Cohorts),
		Beds:       BedConfigYAML(s.Beds),
	}
}
