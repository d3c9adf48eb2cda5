package catalog

// Procedure is a CPT-style code/name pair.
type Procedure struct {
	Code string
	Name string
}

var proceduresByDepartment = map[string][]Procedure{
	"CARD": {{"92928", "Cardiac Catheterization"}, {"93000", "Electrocardiogram"}, {"93306", "Echocardiogram"}},
	"EMER": {{"36415", "Blood Draw"}, {"71020", "Chest X-Ray"}, {"80053", "Comprehensive Metabolic Panel"}},
	"ORTH": {{"27447", "Total Knee Replacement"}, {"27130", "Total Hip Replacement"}, {"25500", "Fracture Repair"}},
	"OBGY": {{"59400", "Vaginal Delivery"}, {"59510", "Cesarean Section"}, {"58150", "Hysterectomy"}},
	"NEUR": {{"61533", "Craniotomy"}, {"95819", "EEG"}, {"70450", "CT Head"}},
	"GAST": {{"47562", "Laparoscopic Cholecystectomy"}, {"44970", "Appendectomy"}, {"43239", "Upper Endoscopy"}},
}

var defaultProcedures = []Procedure{
	{"99213", "Office Visit"},
	{"36415", "Blood Draw"},
	{"85025", "Complete Blood Count"},
}

// ProceduresFor returns the procedure pool a department draws from,
// falling back to generic procedures for departments without a pool.
func ProceduresFor(departmentID string) []Procedure {
	if procs, ok := proceduresByDepartment[departmentID]; ok {
		return procs
	}
	return defaultProcedures
}

var (
	AnesthesiaTypes   = []string{"None", "Local", "General", "Spinal", "Epidural"}
	AnesthesiaWeights = []float64{0.4, 0.3, 0.2, 0.05, 0.05}

	Complications       = []string{"None", "Minor bleeding", "Infection", "Other"}
	ComplicationWeights = []float64{0.85, 0.08, 0.05, 0.02}
)
