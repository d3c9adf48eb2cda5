package wizard

import (
	"fmt"
	"time"

	"github.com/rbotha/hospitalforge/internal/hospital"
)

// ToGeneratorOptions converts WizardState to GeneratorOptions for generation.
func ToGeneratorOptions(s *WizardState) (hospital.GeneratorOptions, error) {
	if s.Population.Patients <= 0 {
		return hospital.GeneratorOptions{}, fmt.Errorf("patients must be > 0, got %d", s.Population.Patients)
	}

	var refDate time.Time
	if s.Population.ReferenceDate != "" {
		parsed, err := time.Parse("2006-01-02", s.Population.ReferenceDate)
		if err != nil {
			return hospital.GeneratorOptions{}, fmt.Errorf("invalid reference date %q: %w", s.Population.ReferenceDate, err)
		}
		refDate = parsed
	}

	outputDir := s.Population.OutputDir
	if outputDir == "" {
		outputDir = "hospital_data"
	}

	return hospital.GeneratorOptions{
		Patients:      s.Population.Patients,
		Seed:          s.Population.Seed,
		OutputDir:     outputDir,
		ReferenceDate: refDate,

		ActiveAdmissionRate:   s.Cohorts.ActiveAdmissionRate,
		HistoricAdmissionRate: s.Cohorts.HistoricAdmissionRate,
		CurrentAdmissionRate:  s.Cohorts.CurrentAdmissionRate,

		ProcedureRate:    s.Cohorts.ProcedureRate,
		MedicationRate:   s.Cohorts.MedicationRate,
		AlliedHealthRate: s.Cohorts.AlliedHealthRate,

		AvgAdmissionsPerPatient:    s.Cohorts.AvgAdmissionsPerPatient,
		AvgProceduresPerAdmission:  s.Cohorts.AvgProceduresPerAdmission,
		AvgMedicationsPerAdmission: s.Cohorts.AvgMedicationsPerAdmission,
		AvgAlliedPerAdmission:      s.Cohorts.AvgAlliedPerAdmission,

		BedWindowDays:    s.Beds.WindowDays,
		WeekdayOccupancy: s.Beds.WeekdayOccupancy,
		WeekendOccupancy: s.Beds.WeekendOccupancy,
		OutOfServiceRate: s.Beds.OutOfServiceRate,
	}, nil
}

// FromGeneratorOptions creates a WizardState from GeneratorOptions.
// Used for --save-config to export CLI options as YAML. Defaults are
// materialized so the saved file is explicit about every knob.
func FromGeneratorOptions(opts hospital.GeneratorOptions) *WizardState {
	opts = opts.WithDefaults()

	return &WizardState{
		Population: PopulationConfig{
			Patients:      opts.Patients,
			Seed:          opts.Seed,
			OutputDir:     opts.OutputDir,
			ReferenceDate: opts.ReferenceDate.Format("2006-01-02"),
		},
		Cohorts: CohortConfig{
			ActiveAdmissionRate:   opts.ActiveAdmissionRate,
			HistoricAdmissionRate: opts.HistoricAdmissionRate,
			CurrentAdmissionRate:  opts.CurrentAdmissionRate,

			ProcedureRate:    opts.ProcedureRate,
			MedicationRate:   opts.MedicationRate,
			AlliedHealthRate: opts.AlliedHealthRate,

			AvgAdmissionsPerPatient:    opts.AvgAdmissionsPerPatient,
			AvgProceduresPerAdmission:  opts.AvgProceduresPerAdmission,
			AvgMedicationsPerAdmission: opts.AvgMedicationsPerAdmission,
			AvgAlliedPerAdmission:      opts.AvgAlliedPerAdmission,
		},
		Beds: BedConfig{
			WindowDays:       opts.BedWindowDays,
			WeekdayOccupancy: opts.WeekdayOccupancy,
			WeekendOccupancy: opts.WeekendOccupancy,
			OutOfServiceRate: opts.OutOfServiceRate,
		},
	}
}
