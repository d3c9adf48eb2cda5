package catalog

import "strings"

// AlliedService is one allied-health service offering.
type AlliedService struct {
	Code            string
	Name            string
	Type            string
	DurationMinutes int
	Cost            float64
}

// AlliedServices lists every allied-health offering. The code prefix
// (PHYS/OCCU/RESP/NUTR/SOCI) selects the provider roster.
var AlliedServices = []AlliedService{
	{"PHYS001", "Initial Physical Therapy Assessment", "Assessment", 60, 150.00},
	{"PHYS002", "Therapeutic Exercise", "Treatment", 45, 120.00},
	{"PHYS003", "Manual Therapy", "Treatment", 30, 135.00},
	{"PHYS004", "Gait Training", "Treatment", 45, 125.00},
	{"OCCU001", "Occupational Therapy Evaluation", "Assessment", 60, 160.00},
	{"OCCU002", "Activities of Daily Living Training", "Treatment", 45, 130.00},
	{"OCCU003", "Cognitive Rehabilitation", "Treatment", 60, 145.00},
	{"OCCU004", "Adaptive Equipment Training", "Treatment", 30, 110.00},
	{"RESP001", "Respiratory Assessment", "Assessment", 30, 125.00},
	{"RESP002", "Breathing Exercise Training", "Treatment", 30, 100.00},
	{"RESP003", "Ventilator Weaning", "Treatment", 60, 200.00},
	{"RESP004", "Oxygen Therapy Management", "Treatment", 15, 85.00},
	{"NUTR001", "Nutritional Assessment", "Assessment", 45, 140.00},
	{"NUTR002", "Diet Education", "Education", 30, 95.00},
	{"NUTR003", "Diabetes Nutrition Counseling", "Education", 45, 120.00},
	{"NUTR004", "Weight Management Program", "Treatment", 30, 105.00},
	{"SOCI001", "Social Work Assessment", "Assessment", 45, 135.00},
	{"SOCI002", "Discharge Planning", "Coordination", 30, 110.00},
	{"SOCI003", "Family Counseling", "Counseling", 60, 150.00},
	{"SOCI004", "Resource Coordination", "Coordination", 30, 100.00},
}

var providersByPrefix = map[string][]string{
	"PHYS": {"Sarah Johnson PT", "Mike Chen PT", "Lisa Rodriguez PT"},
	"OCCU": {"Mark Thompson OT", "Jennifer Kim OT", "David Lee OT"},
	"RESP": {"Lisa Chen RRT", "Kevin Brown RRT", "Maria Garcia RRT"},
	"NUTR": {"Jennifer Martinez RD", "Susan White RD", "Carlos Lopez RD"},
	"SOCI": {"David Kim MSW", "Rachel Green MSW", "Thomas Wilson MSW"},
}

// ProvidersFor returns the provider roster matching a service code prefix.
// Unknown prefixes fall back to the social-services roster.
func ProvidersFor(serviceCode string) []string {
	for prefix, roster := range providersByPrefix {
		if strings.HasPrefix(serviceCode, prefix) {
			return roster
		}
	}
	return providersByPrefix["SOCI"]
}

var (
	ServiceLocations    = []string{"Bedside", "Therapy Gym", "Conference Room", "Patient Room"}
	ParticipationLevels = []string{"Excellent", "Good", "Fair", "Poor"}
)
