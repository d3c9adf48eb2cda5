package hospital

import (
	"fmt"
	"math"

	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
	"github.com/rbotha/hospitalforge/internal/sampling"
	"github.com/rbotha/hospitalforge/internal/util"
)

// maxLOSDays caps length of stay.
const maxLOSDays = 30

// cohortSize converts a rate into a whole cohort count.
func cohortSize(rate float64, population int) int {
	return int(math.Round(rate * float64(population)))
}

// randTime renders a random HH:MM:00 clock time with the hour drawn from
// [loHour, hiHour].
func randTime(src *sampling.Source, loHour, hiHour int) string {
	return fmt.Sprintf("%02d:%02d:00", src.Between(loHour, hiHour), src.Between(0, 59))
}

// generateAdmissions builds admission histories and their procedures.
//
// Three cohorts are sampled independently from the population: active
// patients with admission history, historic patients with admission history,
// and the currently-admitted subset of active patients. Independent sampling
// means the current cohort can overlap either history cohort; that overlap
// is what produces patients who are both currently admitted and carry prior
// stays.
func (g *generator) generateAdmissions(patients []Patient) ([]Admission, []Procedure) {
	if !g.opts.Quiet {
		fmt.Println("Generating admissions and procedures...")
	}

	src := g.src
	ref := g.opts.ReferenceDate

	var activeIdx, historicIdx []int
	for i, p := range patients {
		if p.IsActive {
			activeIdx = append(activeIdx, i)
		} else {
			historicIdx = append(historicIdx, i)
		}
	}

	// Currently-admitted subset of active patients.
	currentlyAdmitted := make(map[int]bool)
	for _, k := range src.SampleIndexes(len(activeIdx), cohortSize(g.opts.CurrentAdmissionRate, len(activeIdx))) {
		currentlyAdmitted[activeIdx[k]] = true
	}

	// Patients that carry admission history, actives first.
	var withAdmissions []int
	for _, k := range src.SampleIndexes(len(activeIdx), cohortSize(g.opts.ActiveAdmissionRate, len(activeIdx))) {
		withAdmissions = append(withAdmissions, activeIdx[k])
	}
	for _, k := range src.SampleIndexes(len(historicIdx), cohortSize(g.opts.HistoricAdmissionRate, len(historicIdx))) {
		withAdmissions = append(withAdmissions, historicIdx[k])
	}

	var admissions []Admission
	var procedures []Procedure
	admissionCounter := 1
	procedureCounter := 1

	for _, pIdx := range withAdmissions {
		patient := patients[pIdx]
		numAdmissions := src.Poisson(g.opts.AvgAdmissionsPerPatient) + 1

		for a := 0; a < numAdmissions; a++ {
			// Place the stay on the timeline. Currently-admitted patients
			// mostly have a fresh stay; other active patients' stays fall in
			// the recent two years; historic patients' stays are older.
			var daysAgo int
			isCurrentAdmission := false
			if patient.IsActive {
				if currentlyAdmitted[pIdx] && src.Chance(0.8) {
					daysAgo = src.Between(1, 30)
					isCurrentAdmission = true
				} else {
					daysAgo = src.Between(30, 730)
				}
			} else {
				daysAgo = src.Between(730, 1460)
			}
			admitted := ref.AddDate(0, 0, -daysAgo)

			dept := sampling.Weighted(src, catalog.Departments, catalog.AdmissionWeights)
			admissionType := util.GenerateAdmissionType(src)

			var los int
			switch admissionType {
			case util.AdmissionEmergency:
				los = int(src.Exponential(3))
			case util.AdmissionElective:
				los = int(src.Normal(4, 2))
			default:
				los = int(src.Exponential(2))
			}
			if los < 1 {
				los = 1
			}
			if los > maxLOSDays {
				los = maxLOSDays
			}

			// Current stays usually have no discharge yet; completed stays
			// always do.
			discharged := false
			if !isCurrentAdmission || src.Chance(0.3) {
				discharged = true
			}

			admissionTime := randTime(src, 0, 23)
			dischargeDate, dischargeTime := "", ""
			if discharged {
				dischargeDate = admitted.AddDate(0, 0, los).Format(dateLayout)
				dischargeTime = randTime(src, 0, 23)
			}

			conditions := catalog.ConditionsFor(dept.ID)
			primary := sampling.Choice(src, conditions)
			secondary := ""
			if src.Chance(0.25) {
				secondary = sampling.Choice(src, conditions)
			}

			// Emergency stays are not assigned a room up front.
			room, bedLetter := "", ""
			if dept.ID != "EMER" {
				room = fmt.Sprintf("%s%02d", dept.Floor, src.Between(10, 99))
				bedLetter = sampling.Choice(src, []string{"A", "B", "C", "D"})
			}

			var baseCharge int
			switch admissionType {
			case util.AdmissionEmergency:
				baseCharge = src.Between(500, 5000)
			case util.AdmissionElective:
				baseCharge = src.Between(8000, 50000)
			default:
				baseCharge = src.Between(2000, 15000)
			}
			totalCharges := baseCharge + los*src.Between(1000, 3000)

			weather := sampling.Weighted(src, catalog.WeatherConditions, weatherWeights())
			temperature := src.Between(weather.TempLowF, weather.TempHighF)

			admission := Admission{
				ID:                     fmt.Sprintf("ADM%06d", admissionCounter),
				PatientID:              patient.ID,
				AdmissionDate:          admitted.Format(dateLayout),
				AdmissionTime:          admissionTime,
				DischargeDate:          dischargeDate,
				DischargeTime:          dischargeTime,
				DepartmentID:           dept.ID,
				Type:                   admissionType.String(),
				ChiefComplaint:         "Complaint related to " + primary,
				DiagnosisPrimary:       primary,
				DiagnosisSecondary:     secondary,
				AttendingPhysician:     dept.HeadPhysician,
				RoomNumber:             room,
				BedNumber:              bedLetter,
				InsuranceAuthorization: fmt.Sprintf("AUTH%06d", src.Between(100000, 999999)),
				TotalCharges:           totalCharges,
				WeatherCondition:       weather.Condition,
				TemperatureF:           temperature,
				admitted:               admitted,
				losDays:                los,
			}
			admissions = append(admissions, admission)
			admissionCounter++

			// Procedures happen inside the stay window [admission,
			// admission+los-1].
			if src.Chance(g.opts.ProcedureRate) {
				numProcedures := src.Poisson(g.opts.AvgProceduresPerAdmission)
				if numProcedures < 1 {
					numProcedures = 1
				}
				pool := catalog.ProceduresFor(dept.ID)

				for p := 0; p < numProcedures; p++ {
					proc := sampling.Choice(src, pool)
					procDate := admitted.AddDate(0, 0, src.Between(0, los-1))

					procedures = append(procedures, Procedure{
						ID:                  fmt.Sprintf("PROC%06d", procedureCounter),
						AdmissionID:         admission.ID,
						Code:                proc.Code,
						Name:                proc.Name,
						Date:                procDate.Format(dateLayout),
						Time:                randTime(src, 7, 18),
						PerformingPhysician: dept.HeadPhysician,
						DurationMinutes:     src.Between(15, 300),
						Cost:                src.Between(200, 15000),
						AnesthesiaType:      sampling.Weighted(src, catalog.AnesthesiaTypes, catalog.AnesthesiaWeights),
						Complications:       sampling.Weighted(src, catalog.Complications, catalog.ComplicationWeights),
						Notes:               "Procedure completed successfully for " + primary,
					})
					procedureCounter++
				}
			}
		}

		g.progress("admissions", len(admissions), 0)
	}

	if !g.opts.Quiet {
		fmt.Printf("Generated %d admissions and %d procedures\n", len(admissions), len(procedures))
	}
	return admissions, procedures
}

// weatherWeights extracts the weight vector from the weather catalog.
func weatherWeights() []float64 {
	weights := make([]float64, len(catalog.WeatherConditions))
	for i, w := range catalog.WeatherConditions {
		weights[i] = w.Weight
	}
	return weights
}
