package hospital

import (
	"fmt"
	"strings"

	"github.com/rbotha/hospitalforge/internal/hospital/catalog"
	"github.com/rbotha/hospitalforge/internal/sampling"
)

// generateAlliedHealth builds therapy, nutrition and social-work service
// records for a share of admissions. Services land between the admission
// date and the discharge date, or the reference date for stays still open.
func (g *generator) generateAlliedHealth(admissions []Admission) []AlliedHealthService {
	if !g.opts.Quiet {
		fmt.Println("Generating allied health services...")
	}

	src := g.src
	ref := g.opts.ReferenceDate

	var services []AlliedHealthService
	serviceCounter := 1

	for i, admission := range admissions {
		if !src.Chance(g.opts.AlliedHealthRate) {
			continue
		}

		// Effective stay length for placing services.
		windowDays := admission.losDays
		if admission.DischargeDate == "" {
			windowDays = int(ref.Sub(admission.admitted).Hours() / 24)
			if windowDays < 0 {
				windowDays = 0
			}
		}

		numServices := src.Poisson(g.opts.AvgAlliedPerAdmission)
		if numServices < 1 {
			numServices = 1
		}

		for s := 0; s < numServices; s++ {
			svc := sampling.Choice(src, catalog.AlliedServices)
			provider := sampling.Choice(src, catalog.ProvidersFor(svc.Code))
			serviceDate := admission.admitted.AddDate(0, 0, src.Between(0, windowDays))

			parts := strings.Fields(provider)
			credentials := parts[len(parts)-1]

			services = append(services, AlliedHealthService{
				ID:                   fmt.Sprintf("AHS%08d", serviceCounter),
				AdmissionID:          admission.ID,
				PatientID:            admission.PatientID,
				ServiceCode:          svc.Code,
				ServiceName:          svc.Name,
				ServiceType:          svc.Type,
				Date:                 serviceDate.Format(dateLayout),
				Time:                 randTime(src, 8, 17),
				DurationMinutes:      svc.DurationMinutes,
				ProviderName:         provider,
				ProviderCredentials:  credentials,
				Location:             sampling.Choice(src, catalog.ServiceLocations),
				Cost:                 svc.Cost,
				PatientParticipation: sampling.Choice(src, catalog.ParticipationLevels),
				GoalsMet:             src.Chance(0.5),
				FollowUpNeeded:       src.Chance(0.5),
				Notes:                "Patient responded well to " + strings.ToLower(svc.Name),
				InsuranceCovered:     src.Chance(0.5),
			})
			serviceCounter++
		}

		g.progress("allied", i+1, len(admissions))
	}

	if !g.opts.Quiet {
		fmt.Printf("Generated %d allied health service records\n", len(services))
	}
	return services
}
