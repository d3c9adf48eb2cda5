package hospital

import (
	"fmt"
	"time"

	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
	"github.com/rbotha/hospitalforge/internal/sampling"
)

// generateBeds builds the bed inventory, a full daily availability grid for
// the configured window, and a booking for every occupied (bed, day) cell.
//
// Booking patient IDs are drawn from the whole PAT namespace without checking
// the admissions table; the bed ledger is an operationally separate system
// and its references are intentionally unvalidated.
func (g *generator) generateBeds() ([]Bed, []BedAvailability, []BedBooking) {
	if !g.opts.Quiet {
		fmt.Println("Generating bed management data...")
	}

	src := g.src

	// Two beds per room, rooms per department derived from capacity.
	// Departments with no beds (imaging, therapy services) are skipped.
	var beds []Bed
	bedCounter := 1
	for _, dept := range catalog.Departments {
		if dept.BedCapacity == 0 {
			continue
		}
		for room := 1; room <= dept.BedCapacity/2; room++ {
			roomNumber := fmt.Sprintf("%s%02d", dept.Floor, room)
			for _, letter := range []string{"A", "B"} {
				beds = append(beds, Bed{
					ID:           fmt.Sprintf("BED%05d", bedCounter),
					DepartmentID: dept.ID,
					RoomNumber:   roomNumber,
					BedNumber:    letter,
					Type:         sampling.Weighted(src, catalog.BedTypes, catalog.BedTypeWeights),
					Equipment:    sampling.Choice(src, catalog.EquipmentOptions),
					IsActive:     true,
					DailyRate:    src.Between(800, 3000),
				})
				bedCounter++
			}
		}
	}

	if !g.opts.Quiet {
		fmt.Printf("Generated %d beds\n", len(beds))
	}

	// Daily availability over a window ending on the reference date, with
	// exactly one record per (bed, day).
	windowStart := g.opts.ReferenceDate.AddDate(0, 0, -(g.opts.BedWindowDays - 1))
	patientNamespace := g.opts.Patients
	if patientNamespace < 1 {
		patientNamespace = 1
	}

	var availability []BedAvailability
	var bookings []BedBooking
	bookingCounter := 1

	for day := 0; day < g.opts.BedWindowDays; day++ {
		date := windowStart.AddDate(0, 0, day)
		dateStr := date.Format(dateLayout)

		occupancy := g.opts.WeekdayOccupancy
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			occupancy = g.opts.WeekendOccupancy
		}

		for _, bed := range beds {
			status := "Available"
			if src.Chance(occupancy) {
				status = "Occupied"
			}
			// A small share of beds is pulled from service regardless of
			// demand.
			if src.Chance(g.opts.OutOfServiceRate) {
				status = sampling.Choice(src, catalog.OutOfServiceStatuses)
			}

			reservedUntil := ""
			if status == "Occupied" {
				reservedUntil = fmt.Sprintf("%02d:00:00", src.Between(8, 20))
			}

			availability = append(availability, BedAvailability{
				ID:            fmt.Sprintf("AVAIL%08d", len(availability)+1),
				BedID:         bed.ID,
				Date:          dateStr,
				Status:        status,
				ReservedUntil: reservedUntil,
				LastUpdated:   dateStr + " " + randTime(src, 0, 23),
			})

			if status != "Occupied" {
				continue
			}

			nights := src.Between(1, 14)
			bookings = append(bookings, BedBooking{
				ID:                   fmt.Sprintf("BOOK%08d", bookingCounter),
				BedID:                bed.ID,
				PatientID:            fmt.Sprintf("PAT%06d", src.Between(1, patientNamespace)),
				CheckInDate:          dateStr,
				CheckInTime:          randTime(src, 8, 20),
				ExpectedCheckoutDate: date.AddDate(0, 0, nights).Format(dateLayout),
				ExpectedCheckoutTime: randTime(src, 8, 16),
				Status:               "Active",
				TotalNights:          nights,
				NightlyRate:          bed.DailyRate,
				TotalCharges:         bed.DailyRate * nights,
				SpecialRequirements:  sampling.Choice(src, catalog.SpecialRequirements),
				CreatedTimestamp:     dateStr + " " + randTime(src, 0, 23),
			})
			bookingCounter++
		}

		g.progress("beds", day+1, g.opts.BedWindowDays)
	}

	if !g.opts.Quiet {
		fmt.Printf("Generated %d bed bookings and %d availability records\n", len(bookings), len(availability))
	}
	return beds, availability, bookings
}
