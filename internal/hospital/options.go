package hospital

import (
	"fmt"
	"time"
)

// DefaultReferenceDate anchors all generated timelines so output is stable
// across wall-clock time.
var DefaultReferenceDate = time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)

// GeneratorOptions contains all parameters needed to generate a dataset.
type GeneratorOptions struct {
	Patients  int
	Seed      int64  // 0 = derive from OutputDir name
	OutputDir string // used for seed derivation and by sinks

	// ReferenceDate is the simulated "today". Zero value selects
	// DefaultReferenceDate.
	ReferenceDate time.Time

	// Cohort rates
	ActiveAdmissionRate   float64 // share of active patients with admission history
	HistoricAdmissionRate float64 // share of historic patients with admission history
	CurrentAdmissionRate  float64 // share of active patients currently admitted

	// Per-admission enrichment rates
	ProcedureRate    float64
	MedicationRate   float64
	AlliedHealthRate float64

	// Poisson means
	AvgAdmissionsPerPatient    float64
	AvgProceduresPerAdmission  float64
	AvgMedicationsPerAdmission float64
	AvgAlliedPerAdmission      float64

	// Bed window
	BedWindowDays    int
	WeekdayOccupancy float64
	WeekendOccupancy float64
	OutOfServiceRate float64

	// Output control
	Quiet            bool                                      // suppress progress output (for TUI integration)
	ProgressCallback func(stage string, current, total int) // optional callback for progress updates
}

// WithDefaults fills unset numeric knobs with the standard rates.
func (o GeneratorOptions) WithDefaults() GeneratorOptions {
	if o.ReferenceDate.IsZero() {
		o.ReferenceDate = DefaultReferenceDate
	}
	if o.ActiveAdmissionRate == 0 {
		o.ActiveAdmissionRate = 0.35
	}
	if o.HistoricAdmissionRate == 0 {
		o.HistoricAdmissionRate = 0.15
	}
	if o.CurrentAdmissionRate == 0 {
		o.CurrentAdmissionRate = 0.05
	}
	if o.ProcedureRate == 0 {
		o.ProcedureRate = 0.6
	}
	if o.MedicationRate == 0 {
		o.MedicationRate = 0.85
	}
	if o.AlliedHealthRate == 0 {
		o.AlliedHealthRate = 0.4
	}
	if o.AvgAdmissionsPerPatient == 0 {
		o.AvgAdmissionsPerPatient = 1.4
	}
	if o.AvgProceduresPerAdmission == 0 {
		o.AvgProceduresPerAdmission = 1.8
	}
	if o.AvgMedicationsPerAdmission == 0 {
		o.AvgMedicationsPerAdmission = 3.2
	}
	if o.AvgAlliedPerAdmission == 0 {
		o.AvgAlliedPerAdmission = 2.1
	}
	if o.BedWindowDays == 0 {
		o.BedWindowDays = 365
	}
	if o.WeekdayOccupancy == 0 {
		o.WeekdayOccupancy = 0.75
	}
	if o.WeekendOccupancy == 0 {
		o.WeekendOccupancy = 0.65
	}
	if o.OutOfServiceRate == 0 {
		o.OutOfServiceRate = 0.05
	}
	return o
}

// validate rejects parameters a run cannot proceed with.
func (o GeneratorOptions) validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"active admission rate", o.ActiveAdmissionRate},
		{"historic admission rate", o.HistoricAdmissionRate},
		{"current admission rate", o.CurrentAdmissionRate},
		{"procedure rate", o.ProcedureRate},
		{"medication rate", o.MedicationRate},
		{"allied health rate", o.AlliedHealthRate},
		{"weekday occupancy", o.WeekdayOccupancy},
		{"weekend occupancy", o.WeekendOccupancy},
		{"out of service rate", o.OutOfServiceRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", r.name, r.value)
		}
	}

	means := []struct {
		name  string
		value float64
	}{
		{"admissions per patient", o.AvgAdmissionsPerPatient},
		{"procedures per admission", o.AvgProceduresPerAdmission},
		{"medications per admission", o.AvgMedicationsPerAdmission},
		{"allied per admission", o.AvgAlliedPerAdmission},
	}
	for _, m := range means {
		if m.value < 0 {
			return fmt.Errorf("average %s must be >= 0, got %v", m.name, m.value)
		}
	}

	if o.BedWindowDays < 1 {
		return fmt.Errorf("bed window must be >= 1 day, got %d", o.BedWindowDays)
	}
	return nil
}
