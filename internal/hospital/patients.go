package hospital

import (
	"fmt"
	"strings"

	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
	"github.com/rbotha/hospitalforge/internal/sampling"
	"github.com/rbotha/hospitalforge/internal/util"
)

// Age bands and their share of the population. Hospital populations skew
// older than the general public.
var (
	ageGroups       = []string{"pediatric", "young_adult", "adult", "senior"}
	ageGroupWeights = []float64{0.15, 0.25, 0.35, 0.25}
)

// birthYearRange maps an age band to its inclusive birth-year window.
func birthYearRange(group string) (int, int) {
	switch group {
	case "pediatric":
		return 2010, 2024
	case "young_adult":
		return 1995, 2005
	case "adult":
		return 1970, 1994
	default: // senior
		return 1940, 1969
	}
}

func (g *generator) generatePatients() []Patient {
	n := g.opts.Patients
	if !g.opts.Quiet {
		fmt.Printf("Generating %d patients...\n", n)
	}

	src := g.src
	faker := src.Faker()
	ref := g.opts.ReferenceDate

	patients := make([]Patient, 0, n)
	for i := 0; i < n; i++ {
		gender := sampling.Choice(src, []string{"M", "F"})
		firstName := util.FirstName(gender, src)
		lastName := util.LastName(src)

		group := sampling.Weighted(src, ageGroups, ageGroupWeights)
		yearLo, yearHi := birthYearRange(group)
		// Day capped at 28 so every month is valid.
		dob := fmt.Sprintf("%04d-%02d-%02d",
			src.Between(yearLo, yearHi), src.Between(1, 12), src.Between(1, 28))

		city := sampling.Choice(src, catalog.Cities)
		var zip string
		if pool, ok := catalog.ZipPools[city]; ok {
			zip = sampling.Choice(src, pool)
		} else {
			zip = fmt.Sprintf("0%d", src.Between(2100, 2799))
		}

		address := faker.Street()
		phone := truncPhone(faker.PhoneFormatted())
		emergencyName := faker.Name()
		emergencyPhone := truncPhone(faker.PhoneFormatted())

		status := sampling.Weighted(src, []string{"Active", "Historic"}, []float64{0.7, 0.3})

		// Active patients registered and visited recently; historic ones
		// have gone quiet.
		var registrationDaysAgo, lastVisitDaysAgo int
		if status == "Active" {
			registrationDaysAgo = src.Between(1, 1095)
			lastVisitDaysAgo = src.Between(1, 730)
		} else {
			registrationDaysAgo = src.Between(1095, 3650)
			lastVisitDaysAgo = src.Between(730, 2190)
		}

		patients = append(patients, Patient{
			ID:                    fmt.Sprintf("PAT%06d", i+1),
			FirstName:             firstName,
			LastName:              lastName,
			DateOfBirth:           dob,
			Gender:                gender,
			Address:               address,
			City:                  city,
			State:                 "MA",
			ZipCode:               zip,
			Phone:                 phone,
			Email:                 strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@email.com",
			InsuranceProvider:     sampling.Choice(src, catalog.InsuranceProviders),
			EmergencyContactName:  emergencyName,
			EmergencyContactPhone: emergencyPhone,
			Status:                status,
			RegistrationDate:      ref.AddDate(0, 0, -registrationDaysAgo).Format(dateLayout),
			LastVisitDate:         ref.AddDate(0, 0, -lastVisitDaysAgo).Format(dateLayout),
			IsActive:              status == "Active",
		})

		if (i+1)%1000 == 0 {
			g.progress("patients", i+1, n)
			if !g.opts.Quiet {
				fmt.Printf("  Generated %d patients...\n", i+1)
			}
		}
	}
	g.progress("patients", n, n)

	return patients
}

// truncPhone keeps phone columns at a fixed maximum width.
func truncPhone(p string) string {
	if len(p) > 12 {
		return p[:12]
	}
	return p
}
