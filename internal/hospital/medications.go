package hospital

import (
	"fmt"

	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
	"github.com/rbotha/hospitalforge/internal/sampling"
)

// maxDosesPerOrder caps dispensing records per order.
const maxDosesPerOrder = 9

// generateMedications builds the pharmacy inventory, per-admission medication
// orders and the dispensing trail behind them.
func (g *generator) generateMedications(admissions []Admission) ([]InventoryItem, []MedicationOrder, []Dispensing) {
	if !g.opts.Quiet {
		fmt.Println("Generating medication data...")
	}

	src := g.src
	ref := g.opts.ReferenceDate

	// Every formulary entry is stocked in several lots.
	var inventory []InventoryItem
	lotsByMedication := make(map[string][]int) // medication code -> inventory indexes
	for _, med := range catalog.Medications {
		numLots := src.Between(3, 7)
		for lot := 0; lot < numLots; lot++ {
			id := len(inventory) + 1
			inventory = append(inventory, InventoryItem{
				ID:                  fmt.Sprintf("INV%06d", id),
				MedicationCode:      med.Code,
				MedicationName:      med.Name,
				MedicationClass:     med.Class,
				TherapeuticCategory: med.TherapeuticCategory,
				DosageForm:          med.DosageForm,
				Strength:            med.Strength,
				UnitCost:            med.UnitCost,
				LotNumber:           fmt.Sprintf("LOT%06d", id),
				ExpirationDate:      ref.AddDate(0, 0, src.Between(180, 1095)).Format(dateLayout),
				QuantityOnHand:      src.Between(50, 500),
				ReorderLevel:        src.Between(10, 50),
				Supplier:            sampling.Choice(src, catalog.Suppliers),
				StorageLocation:     fmt.Sprintf("Shelf-%d-%s", src.Between(1, 20), sampling.Choice(src, []string{"A", "B", "C", "D"})),
			})
			lotsByMedication[med.Code] = append(lotsByMedication[med.Code], len(inventory)-1)
		}
	}

	var orders []MedicationOrder
	var dispensing []Dispensing
	orderCounter := 1
	dispensingCounter := 1

	for i, admission := range admissions {
		if !src.Chance(g.opts.MedicationRate) {
			continue
		}

		numMedications := src.Poisson(g.opts.AvgMedicationsPerAdmission)
		if numMedications < 1 {
			numMedications = 1
		}
		formulary := catalog.MedicationsFor(admission.DepartmentID)

		for m := 0; m < numMedications; m++ {
			med := sampling.Choice(src, formulary)

			quantity := src.Between(1, 30)
			duration := src.Between(1, 14)

			order := MedicationOrder{
				ID:                   fmt.Sprintf("ORD%08d", orderCounter),
				AdmissionID:          admission.ID,
				PatientID:            admission.PatientID,
				MedicationCode:       med.Code,
				MedicationName:       med.Name,
				PrescribingPhysician: admission.AttendingPhysician,
				OrderDate:            admission.AdmissionDate,
				OrderTime:            randTime(src, 0, 23),
				QuantityOrdered:      quantity,
				Frequency:            sampling.Choice(src, catalog.Frequencies),
				DurationDays:         duration,
				Route:                sampling.Choice(src, catalog.Routes),
				Priority:             sampling.Choice(src, catalog.OrderPriorities),
				Status:               sampling.Choice(src, catalog.OrderStatuses),
				AllergiesChecked:     true,
				InteractionsChecked:  true,
			}
			orders = append(orders, order)
			orderCounter++

			// Most orders leave a dispensing trail: one dose per record,
			// capped by the ordered quantity, a four-a-day schedule and the
			// per-order limit.
			if !src.Chance(0.9) {
				continue
			}
			doses := quantity
			if byDuration := duration * 4; byDuration < doses {
				doses = byDuration
			}
			if doses > maxDosesPerOrder {
				doses = maxDosesPerOrder
			}

			lots := lotsByMedication[med.Code]
			for dose := 0; dose < doses; dose++ {
				lot := inventory[lots[src.IntN(len(lots))]]
				dispenseDate := admission.admitted.AddDate(0, 0, src.Between(0, duration))

				dispensing = append(dispensing, Dispensing{
					ID:                   fmt.Sprintf("DISP%08d", dispensingCounter),
					OrderID:              order.ID,
					PatientID:            admission.PatientID,
					MedicationCode:       med.Code,
					InventoryID:          lot.ID,
					LotNumber:            lot.LotNumber,
					DispenseDate:         dispenseDate.Format(dateLayout),
					DispenseTime:         randTime(src, 6, 22),
					QuantityDispensed:    1,
					DispensingPharmacist: sampling.Choice(src, catalog.Pharmacists),
					AdministrationTime:   randTime(src, 6, 22),
					AdministeredBy:       sampling.Choice(src, catalog.Nurses),
					PatientResponse:      sampling.Choice(src, catalog.PatientResponses),
					SideEffects:          sampling.Choice(src, catalog.SideEffects),
					CostPerUnit:          med.UnitCost,
					TotalCost:            med.UnitCost,
				})
				dispensingCounter++
			}
		}

		g.progress("medications", i+1, len(admissions))
	}

	if !g.opts.Quiet {
		fmt.Printf("Generated %d medication orders and %d dispensing records\n", len(orders), len(dispensing))
	}
	return inventory, orders, dispensing
}
