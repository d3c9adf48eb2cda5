package tests

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rbotha/hospitalforge/internal/hospital"
	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
)

func generate(t *testing.T, opts hospital.GeneratorOptions) *hospital.Dataset {
	t.Helper()

	ds, err := hospital.Generate(opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return ds
}

// TestValidation_CohortSizes tests that the admission cohorts follow the rates
func TestValidation_CohortSizes(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      1000,
		Seed:          42,
		BedWindowDays: 7,
		Quiet:         true,
	})

	active := 0
	for _, p := range ds.Patients {
		if p.IsActive {
			active++
		}
	}
	t.Logf("Population: %d active, %d historic", active, len(ds.Patients)-active)

	// Patients with at least one admission
	withHistory := make(map[string]bool)
	for _, a := range ds.Admissions {
		withHistory[a.PatientID] = true
	}

	// The cohorts are drawn as fixed-size samples, so the count is exact:
	// 35% of active patients plus 15% of historic patients, each rounded.
	historic := len(ds.Patients) - active
	expected := int(math.Round(float64(active)*0.35)) + int(math.Round(float64(historic)*0.15))
	if len(withHistory) != expected {
		t.Errorf("Patients with admission history: %d, want %d", len(withHistory), expected)
	} else {
		t.Logf("✓ Admission cohort size %d matches round(0.35*%d) + round(0.15*%d)", expected, active, historic)
	}
}

// TestValidation_StayDurations tests that discharged stays stay within bounds
func TestValidation_StayDurations(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      500,
		Seed:          7,
		BedWindowDays: 7,
		Quiet:         true,
	})

	checked := 0
	for _, a := range ds.Admissions {
		if a.DischargeDate == "" {
			continue
		}
		admitted, err := time.Parse("2006-01-02", a.AdmissionDate)
		if err != nil {
			t.Fatalf("Bad admission date %q: %v", a.AdmissionDate, err)
		}
		discharged, err := time.Parse("2006-01-02", a.DischargeDate)
		if err != nil {
			t.Fatalf("Bad discharge date %q: %v", a.DischargeDate, err)
		}

		los := int(discharged.Sub(admitted).Hours() / 24)
		if los < 1 || los > 30 {
			t.Errorf("Admission %s has stay of %d days, want 1-30", a.ID, los)
		}
		checked++
	}
	t.Logf("✓ %d discharged stays all within 1-30 days", checked)
}

// TestValidation_AdmissionTypeDistribution tests the emergency/elective/urgent split
func TestValidation_AdmissionTypeDistribution(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      2000,
		Seed:          3,
		BedWindowDays: 7,
		Quiet:         true,
	})

	counts := make(map[string]int)
	for _, a := range ds.Admissions {
		counts[a.Type]++
	}
	total := len(ds.Admissions)
	if total == 0 {
		t.Fatal("Expected some admissions")
	}
	t.Logf("Types: %v of %d total", counts, total)

	// 60/30/10 split; allow generous slack for sampling noise
	if frac := float64(counts["Emergency"]) / float64(total); frac < 0.5 || frac > 0.7 {
		t.Errorf("Emergency fraction %v, want ~0.6", frac)
	}
	if frac := float64(counts["Elective"]) / float64(total); frac < 0.2 || frac > 0.4 {
		t.Errorf("Elective fraction %v, want ~0.3", frac)
	}
	if counts["Emergency"]+counts["Elective"]+counts["Urgent"] != total {
		t.Errorf("Unexpected admission type outside the known set")
	}
	t.Logf("✓ Admission type distribution matches 60/30/10 split")
}

// TestValidation_DepartmentsAreKnown tests that all referenced departments exist
func TestValidation_DepartmentsAreKnown(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      300,
		Seed:          11,
		BedWindowDays: 7,
		Quiet:         true,
	})

	for _, a := range ds.Admissions {
		if _, ok := catalog.DepartmentByID(a.DepartmentID); !ok {
			t.Errorf("Admission %s references unknown department %s", a.ID, a.DepartmentID)
		}
	}
	for _, b := range ds.Beds {
		if _, ok := catalog.DepartmentByID(b.DepartmentID); !ok {
			t.Errorf("Bed %s references unknown department %s", b.ID, b.DepartmentID)
		}
	}
	t.Logf("✓ All admissions and beds reference known departments")
}

// TestValidation_DiagnosisMatchesDepartment tests condition pools per department
func TestValidation_DiagnosisMatchesDepartment(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      400,
		Seed:          13,
		BedWindowDays: 7,
		Quiet:         true,
	})

	for _, a := range ds.Admissions {
		pool := catalog.ConditionsFor(a.DepartmentID)
		found := false
		for _, c := range pool {
			if a.DiagnosisPrimary == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Admission %s: diagnosis %q not in %s condition pool", a.ID, a.DiagnosisPrimary, a.DepartmentID)
		}
	}
	t.Logf("✓ All primary diagnoses come from their department's condition pool")
}

// TestValidation_InventoryExpirations tests that lots expire after the reference date
func TestValidation_InventoryExpirations(t *testing.T) {
	refDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      50,
		Seed:          17,
		ReferenceDate: refDate,
		BedWindowDays: 7,
		Quiet:         true,
	})

	for _, lot := range ds.PharmacyInventory {
		exp, err := time.Parse("2006-01-02", lot.ExpirationDate)
		if err != nil {
			t.Fatalf("Bad expiration date %q: %v", lot.ExpirationDate, err)
		}
		if !exp.After(refDate) {
			t.Errorf("Lot %s expires %s, on or before the reference date", lot.ID, lot.ExpirationDate)
		}
	}
	t.Logf("✓ All %d inventory lots expire after the reference date", len(ds.PharmacyInventory))
}

// TestValidation_DispensingCosts tests that dispensing rows carry the lot's unit cost
func TestValidation_DispensingCosts(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      300,
		Seed:          19,
		BedWindowDays: 7,
		Quiet:         true,
	})

	costByCode := make(map[string]float64)
	for _, m := range catalog.Medications {
		costByCode[m.Code] = m.UnitCost
	}

	for _, d := range ds.MedicationDispensing {
		want := costByCode[d.MedicationCode]
		if d.CostPerUnit != want {
			t.Errorf("Dispensing %s: cost per unit %v, want %v for %s", d.ID, d.CostPerUnit, want, d.MedicationCode)
		}
		if d.TotalCost != want*float64(d.QuantityDispensed) {
			t.Errorf("Dispensing %s: total cost %v, want %v", d.ID, d.TotalCost, want*float64(d.QuantityDispensed))
		}
	}
	t.Logf("✓ %d dispensing rows all carry formulary unit costs", len(ds.MedicationDispensing))
}

// TestValidation_AlliedCredentials tests that credentials match the provider name
func TestValidation_AlliedCredentials(t *testing.T) {
	ds := generate(t, hospital.GeneratorOptions{
		Patients:      300,
		Seed:          23,
		BedWindowDays: 7,
		Quiet:         true,
	})

	for _, svc := range ds.AlliedHealthServices {
		if !strings.HasSuffix(svc.ProviderName, svc.ProviderCredentials) {
			t.Errorf("Service %s: credentials %q not the suffix of provider %q",
				svc.ID, svc.ProviderCredentials, svc.ProviderName)
		}
	}
	t.Logf("✓ %d allied health services carry provider-matched credentials", len(ds.AlliedHealthServices))
}

// TestValidation_BedAvailabilityWindow tests the grid covers exactly the window
func TestValidation_BedAvailabilityWindow(t *testing.T) {
	refDate := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
	windowDays := 10

	ds := generate(t, hospital.GeneratorOptions{
		Patients:      20,
		Seed:          29,
		ReferenceDate: refDate,
		BedWindowDays: windowDays,
		Quiet:         true,
	})

	wantRows := len(ds.Beds) * windowDays
	if len(ds.BedAvailability) != wantRows {
		t.Errorf("Availability rows %d, want beds %d x window %d = %d",
			len(ds.BedAvailability), len(ds.Beds), windowDays, wantRows)
	}

	windowStart := refDate.AddDate(0, 0, -(windowDays - 1))
	for _, av := range ds.BedAvailability {
		day, err := time.Parse("2006-01-02", av.Date)
		if err != nil {
			t.Fatalf("Bad availability date %q: %v", av.Date, err)
		}
		if day.Before(windowStart) || day.After(refDate) {
			t.Errorf("Availability %s on %s outside window [%s, %s]",
				av.ID, av.Date, windowStart.Format("2006-01-02"), refDate.Format("2006-01-02"))
		}
	}
	t.Logf("✓ Availability grid covers exactly %d beds x %d days", len(ds.Beds), windowDays)
}
