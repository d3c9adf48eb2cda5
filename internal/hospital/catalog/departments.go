// Package catalog holds the static reference data the generators draw from:
// departments, medication formulary, procedure codes, allied-health services,
// geography and staff rosters. Everything here is fixed at compile time so a
// given (configuration, seed) pair always sees the same catalogs.
package catalog

// Department describes one hospital department.
type Department struct {
	ID             string
	Name           string
	HeadPhysician  string
	Floor          string
	CostCenter     string
	AnnualBudget   int
	StaffCount     int
	BedCapacity    int
	SpecialtyFocus string
}

// Departments lists every department in admission-weight order. The index of
// a department here matches its weight in AdmissionWeights.
var Departments = []Department{
	{"CARD", "Cardiology", "Dr. Sarah Chen", "2", "2201", 2500000, 25, 30, "Cardiac Care"},
	{"EMER", "Emergency Department", "Dr. Michael Torres", "1", "1101", 3200000, 45, 15, "Emergency Medicine"},
	{"ORTH", "Orthopedics", "Dr. Jennifer Park", "3", "3301", 1800000, 20, 25, "Bone and Joint"},
	{"OBGY", "Obstetrics & Gynecology", "Dr. Amanda Rodriguez", "4", "4401", 2100000, 30, 20, "Women's Health"},
	{"NEUR", "Neurology", "Dr. Robert Kim", "5", "5501", 2800000, 22, 20, "Neurological Care"},
	{"GAST", "Gastroenterology", "Dr. Lisa Wang", "3", "3302", 1600000, 18, 15, "Digestive Health"},
	{"PEDI", "Pediatrics", "Dr. Mark Thompson", "2", "2202", 2200000, 28, 25, "Child Care"},
	{"ONCO", "Oncology", "Dr. Patricia Davis", "4", "4402", 3500000, 35, 20, "Cancer Treatment"},
	{"PSYC", "Psychiatry", "Dr. James Wilson", "1", "1102", 1400000, 15, 10, "Mental Health"},
	{"RADI", "Radiology", "Dr. Maria Gonzalez", "B1", "0101", 2000000, 20, 0, "Medical Imaging"},
	{"PULM", "Pulmonology", "Dr. David Lee", "3", "3303", 1900000, 20, 18, "Respiratory Care"},
	{"ENDO", "Endocrinology", "Dr. Susan Miller", "2", "2203", 1700000, 15, 12, "Hormonal Disorders"},
	{"DERM", "Dermatology", "Dr. Kevin Brown", "1", "1103", 1300000, 12, 8, "Skin Care"},
	{"UROL", "Urology", "Dr. Rachel Green", "3", "3304", 1650000, 18, 16, "Urinary System"},
	{"RHEU", "Rheumatology", "Dr. Thomas White", "2", "2204", 1450000, 14, 10, "Joint Disorders"},
	{"PHAR", "Pharmacy", "Dr. Michelle Adams", "B1", "0102", 1200000, 25, 0, "Medication Management"},
	{"PHYS", "Physical Therapy", "Sarah Johnson PT", "1", "1104", 900000, 20, 0, "Rehabilitation"},
	{"OCCU", "Occupational Therapy", "Mark Thompson OT", "1", "1105", 800000, 15, 0, "Occupational Health"},
	{"RESP", "Respiratory Therapy", "Lisa Chen RRT", "2", "2205", 750000, 18, 0, "Breathing Support"},
	{"NUTR", "Nutrition Services", "Jennifer Martinez RD", "1", "1106", 600000, 12, 0, "Dietary Services"},
	{"SOCI", "Social Services", "David Kim MSW", "1", "1107", 500000, 8, 0, "Patient Support"},
}

// AdmissionWeights gives each department's share of admissions, indexed in
// parallel with Departments.
var AdmissionWeights = []float64{
	0.20, 0.12, 0.10, 0.06, 0.06, 0.05, 0.08, 0.04, 0.02, 0.02,
	0.05, 0.02, 0.02, 0.02, 0.02, 0.02, 0.05, 0.05, 0.04, 0.04, 0.02,
}

// DepartmentByID returns the department with the given ID. The second result
// is false when the ID is unknown.
func DepartmentByID(id string) (Department, bool) {
	for _, d := range Departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

var conditionsByDepartment = map[string][]string{
	"CARD": {"Myocardial Infarction", "Angina", "Atrial Fibrillation", "Congestive Heart Failure", "Hypertension", "Coronary Artery Disease"},
	"EMER": {"Trauma", "Chest Pain", "Abdominal Pain", "Motor Vehicle Accident", "Drug Overdose", "Allergic Reaction"},
	"ORTH": {"Fracture", "Osteoarthritis", "Hip Replacement", "Knee Replacement", "Spinal Surgery", "Joint Dislocation"},
	"OBGY": {"Normal Delivery", "Cesarean Section", "Preeclampsia", "Pregnancy Complications", "Gynecological Surgery"},
	"NEUR": {"Stroke", "Epilepsy", "Migraine", "Dementia", "Parkinson's Disease", "Multiple Sclerosis"},
	"GAST": {"Appendicitis", "Gallbladder Surgery", "Hernia Repair", "Gastritis", "Inflammatory Bowel Disease"},
	"PEDI": {"Bronchiolitis", "Pneumonia", "Gastroenteritis", "Asthma", "Ear Infection", "Vaccination"},
	"ONCO": {"Breast Cancer", "Lung Cancer", "Colon Cancer", "Chemotherapy", "Radiation Therapy"},
	"PSYC": {"Depression", "Anxiety Disorder", "Bipolar Disorder", "Substance Abuse", "PTSD"},
	"RADI": {"CT Scan", "MRI", "X-Ray", "Ultrasound", "Mammography"},
	"PULM": {"Pneumonia", "COPD", "Asthma", "Pulmonary Embolism", "Sleep Apnea"},
	"ENDO": {"Diabetes", "Thyroid Disorder", "Adrenal Disorder", "Metabolic Syndrome"},
	"DERM": {"Skin Cancer", "Eczema", "Psoriasis", "Dermatitis", "Melanoma"},
	"UROL": {"Kidney Stones", "Prostate Surgery", "Bladder Cancer", "Urinary Tract Infection"},
	"RHEU": {"Rheumatoid Arthritis", "Lupus", "Fibromyalgia", "Gout", "Osteoporosis"},
	"PHAR": {"Medication Counseling", "Drug Interaction Review", "Dosage Adjustment", "Pharmacy Consultation"},
	"PHYS": {"Physical Assessment", "Mobility Training", "Strength Training", "Balance Training"},
	"OCCU": {"Activities of Daily Living", "Cognitive Assessment", "Work Hardening", "Adaptive Equipment"},
	"RESP": {"Breathing Exercises", "Ventilator Weaning", "Oxygen Therapy", "Pulmonary Rehabilitation"},
	"NUTR": {"Nutritional Assessment", "Diet Planning", "Diabetes Education", "Weight Management"},
	"SOCI": {"Discharge Planning", "Family Counseling", "Resource Coordination", "Crisis Intervention"},
}

// generalCareConditions backs departments with no condition list of their own.
var generalCareConditions = []string{"General Care"}

// ConditionsFor returns the diagnosis pool for a department, falling back to
// a generic pool for unknown departments.
func ConditionsFor(departmentID string) []string {
	if conditions, ok := conditionsByDepartment[departmentID]; ok {
		return conditions
	}
	return generalCareConditions
}
