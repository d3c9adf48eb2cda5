// Package types holds the wizard configuration structures. They live in
// their own package so the screen implementations can share them with the
// orchestrator.
package types

// WizardState holds the complete state for the wizard interface.
type WizardState struct {
	Population PopulationConfig
	Cohorts    CohortConfig
	Beds       BedConfig
}

// PopulationConfig holds the top-level generation settings.
type PopulationConfig struct {
	Patients      int
	Seed          int64
	OutputDir     string
	ReferenceDate string // YYYY-MM-DD, empty selects the built-in default
}

// CohortConfig holds the cohort rates and per-admission volume knobs.
type CohortConfig struct {
	ActiveAdmissionRate   float64
	HistoricAdmissionRate float64
	CurrentAdmissionRate  float64

	ProcedureRate    float64
	MedicationRate   float64
	AlliedHealthRate float64

	AvgAdmissionsPerPatient    float64
	AvgProceduresPerAdmission  float64
	AvgMedicationsPerAdmission float64
	AvgAlliedPerAdmission      float64
}

// BedConfig holds the bed availability window settings.
type BedConfig struct {
	WindowDays       int
	WeekdayOccupancy float64
	WeekendOccupancy float64
	OutOfServiceRate float64
}
