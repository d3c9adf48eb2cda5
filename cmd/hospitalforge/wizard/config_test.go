package wizard

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"
)

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	content := `
population:
  patients: 500
  seed: 42
  output_dir: ./test
  reference_date: "2025-01-31"
cohorts:
  active_admission_rate: 0.35
  historic_admission_rate: 0.15
  current_admission_rate: 0.05
  procedure_rate: 0.6
  medication_rate: 0.85
  allied_health_rate: 0.4
  avg_admissions_per_patient: 1.4
  avg_procedures_per_admission: 1.8
  avg_medications_per_admission: 3.2
  avg_allied_per_admission: 2.1
beds:
  window_days: 90
  weekday_occupancy: 0.75
  weekend_occupancy: 0.65
  out_of_service_rate: 0.05
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	state, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if state.Population.Patients != 500 {
		t.Errorf("Expected patients 500, got %d", state.Population.Patients)
	}
	if state.Population.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", state.Population.Seed)
	}
	if state.Population.OutputDir != "./test" {
		t.Errorf("Expected output_dir ./test, got %s", state.Population.OutputDir)
	}
	if state.Population.ReferenceDate != "2025-01-31" {
		t.Errorf("Expected reference_date 2025-01-31, got %s", state.Population.ReferenceDate)
	}

	if state.Cohorts.ActiveAdmissionRate != 0.35 {
		t.Errorf("Expected active_admission_rate 0.35, got %v", state.Cohorts.ActiveAdmissionRate)
	}
	if state.Cohorts.MedicationRate != 0.85 {
		t.Errorf("Expected medication_rate 0.85, got %v", state.Cohorts.MedicationRate)
	}
	if state.Cohorts.AvgMedicationsPerAdmission != 3.2 {
		t.Errorf("Expected avg_medications_per_admission 3.2, got %v", state.Cohorts.AvgMedicationsPerAdmission)
	}

	if state.Beds.WindowDays != 90 {
		t.Errorf("Expected window_days 90, got %d", state.Beds.WindowDays)
	}
	if state.Beds.WeekendOccupancy != 0.65 {
		t.Errorf("Expected weekend_occupancy 0.65, got %v", state.Beds.WeekendOccupancy)
	}
}

func TestLoadFromYAML_NonExistentFile(t *testing.T) {
	_, err := LoadFromYAML("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadFromYAML_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	content := `
population:
  patients: [invalid array in scalar field
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFromYAML(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestSaveToYAML_AndLoadBack(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "output.yaml")

	state := &WizardState{
		Population: types.PopulationConfig{
			Patients:      2500,
			Seed:          7,
			OutputDir:     "demo_data",
			ReferenceDate: "2024-06-30",
		},
		Cohorts: types.CohortConfig{
			ActiveAdmissionRate:        0.4,
			HistoricAdmissionRate:      0.2,
			CurrentAdmissionRate:       0.1,
			ProcedureRate:              0.5,
			MedicationRate:             0.9,
			AlliedHealthRate:           0.3,
			AvgAdmissionsPerPatient:    2,
			AvgProceduresPerAdmission:  1.5,
			AvgMedicationsPerAdmission: 4,
			AvgAlliedPerAdmission:      1,
		},
		Beds: types.BedConfig{
			WindowDays:       30,
			WeekdayOccupancy: 0.8,
			WeekendOccupancy: 0.6,
			OutOfServiceRate: 0.02,
		},
	}

	if err := SaveToYAML(state, configPath); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", state, loaded)
	}
}

func TestSaveToYAML_UnwritablePath(t *testing.T) {
	state := NewWizard(nil).state
	err := SaveToYAML(state, "/non/existent/dir/config.yaml")
	if err == nil {
		t.Error("Expected error for unwritable path, got nil")
	}
}
