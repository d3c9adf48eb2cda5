package catalog

// Medication is one formulary entry.
type Medication struct {
	Code                string
	Name                string
	Class               string
	TherapeuticCategory string
	DosageForm          string
	Strength            string
	UnitCost            float64
}

// Medications is the hospital formulary.
var Medications = []Medication{
	{"MED001", "Lisinopril", "ACE Inhibitor", "Cardiovascular", "Tablet", "10mg", 15.50},
	{"MED002", "Metformin", "Antidiabetic", "Endocrine", "Tablet", "500mg", 12.25},
	{"MED003", "Atorvastatin", "Statin", "Cardiovascular", "Tablet", "20mg", 28.75},
	{"MED004", "Omeprazole", "Proton Pump Inhibitor", "Gastrointestinal", "Capsule", "20mg", 22.00},
	{"MED005", "Amlodipine", "Calcium Channel Blocker", "Cardiovascular", "Tablet", "5mg", 18.50},
	{"MED006", "Simvastatin", "Statin", "Cardiovascular", "Tablet", "40mg", 25.75},
	{"MED007", "Levothyroxine", "Thyroid Hormone", "Endocrine", "Tablet", "50mcg", 35.25},
	{"MED008", "Azithromycin", "Antibiotic", "Anti-Infective", "Tablet", "250mg", 45.00},
	{"MED009", "Prednisone", "Corticosteroid", "Anti-Inflammatory", "Tablet", "10mg", 20.50},
	{"MED010", "Warfarin", "Anticoagulant", "Cardiovascular", "Tablet", "5mg", 32.75},
	{"MED011", "Insulin Glargine", "Long-Acting Insulin", "Endocrine", "Injection", "100units/mL", 125.00},
	{"MED012", "Morphine", "Opioid Analgesic", "Pain Management", "Injection", "10mg/mL", 85.50},
	{"MED013", "Furosemide", "Loop Diuretic", "Cardiovascular", "Tablet", "40mg", 16.25},
	{"MED014", "Hydrocodone", "Opioid Analgesic", "Pain Management", "Tablet", "5mg", 55.75},
	{"MED015", "Sertraline", "SSRI Antidepressant", "Psychiatric", "Tablet", "50mg", 42.00},
	{"MED016", "Gabapentin", "Anticonvulsant", "Neurological", "Capsule", "300mg", 38.25},
	{"MED017", "Clopidogrel", "Antiplatelet", "Cardiovascular", "Tablet", "75mg", 65.50},
	{"MED018", "Metoprolol", "Beta Blocker", "Cardiovascular", "Tablet", "50mg", 19.75},
	{"MED019", "Pantoprazole", "Proton Pump Inhibitor", "Gastrointestinal", "Tablet", "40mg", 28.00},
	{"MED020", "Tramadol", "Analgesic", "Pain Management", "Tablet", "50mg", 33.50},
}

// categoriesByDepartment maps prescribing departments to the therapeutic
// categories they order from. Departments not listed draw from the whole
// formulary.
var categoriesByDepartment = map[string][]string{
	"CARD": {"Cardiovascular"},
	"NEUR": {"Neurological", "Pain Management"},
	"ENDO": {"Endocrine"},
	"GAST": {"Gastrointestinal"},
}

// MedicationsFor returns the formulary slice a department orders from. An
// empty filter result falls back to the full formulary so an order can always
// be placed.
func MedicationsFor(departmentID string) []Medication {
	categories, ok := categoriesByDepartment[departmentID]
	if !ok {
		return Medications
	}
	var filtered []Medication
	for _, m := range Medications {
		for _, c := range categories {
			if m.TherapeuticCategory == c {
				filtered = append(filtered, m)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return Medications
	}
	return filtered
}

// Suppliers, staff rosters and order vocabularies.
var (
	Suppliers = []string{"Cardinal Health", "McKesson", "AmerisourceBergen", "Morris & Dickson"}

	Pharmacists = []string{"PharmD John Smith", "PharmD Sarah Lee", "PharmD Michael Chen", "PharmD Lisa Wang"}

	Nurses = []string{"RN Jennifer Brown", "RN David Kim", "RN Maria Rodriguez", "RN Kevin Johnson"}

	Frequencies = []string{"Once daily", "Twice daily", "Three times daily", "Four times daily", "As needed", "Every 6 hours"}

	Routes = []string{"Oral", "IV", "IM", "Topical", "Inhalation"}

	OrderPriorities = []string{"Routine", "Urgent", "STAT"}

	OrderStatuses = []string{"Active", "Completed", "Discontinued"}

	PatientResponses = []string{"Good", "Mild side effects", "No response", "Excellent"}

	// SideEffects includes the empty string for the common no-effect case.
	SideEffects = []string{"", "Nausea", "Drowsiness", "Headache", "Dizziness"}
)
