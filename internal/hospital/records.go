package hospital

import (
	"strconv"
	"time"
)

// dateLayout is the wire format for all date columns.
const dateLayout = "2006-01-02"

// Patient is one row of patient_demographics.
type Patient struct {
	ID                    string
	FirstName             string
	LastName              string
	DateOfBirth           string
	Gender                string
	Address               string
	City                  string
	State                 string
	ZipCode               string
	Phone                 string
	Email                 string
	InsuranceProvider     string
	EmergencyContactName  string
	EmergencyContactPhone string
	Status                string
	RegistrationDate      string
	LastVisitDate         string
	IsActive              bool
}

// Admission is one row of patient_admissions.
type Admission struct {
	ID                     string
	PatientID              string
	AdmissionDate          string
	AdmissionTime          string
	DischargeDate          string // empty while still admitted
	DischargeTime          string
	DepartmentID           string
	Type                   string
	ChiefComplaint         string
	DiagnosisPrimary       string
	DiagnosisSecondary     string
	AttendingPhysician     string
	RoomNumber             string // empty for emergency admissions
	BedNumber              string
	InsuranceAuthorization string
	TotalCharges           int
	WeatherCondition       string
	TemperatureF           int

	// Parsed admission timeline, kept for downstream generators.
	admitted time.Time
	losDays  int
}

// Procedure is one row of medical_procedures.
type Procedure struct {
	ID                  string
	AdmissionID         string
	Code                string
	Name                string
	Date                string
	Time                string
	PerformingPhysician string
	DurationMinutes     int
	Cost                int
	AnesthesiaType      string
	Complications       string
	Notes               string
}

// Bed is one row of bed_inventory.
type Bed struct {
	ID           string
	DepartmentID string
	RoomNumber   string
	BedNumber    string
	Type         string
	Equipment    string
	IsActive     bool
	DailyRate    int
}

// BedAvailability is one row of bed_availability: the state of one bed on
// one calendar day.
type BedAvailability struct {
	ID            string
	BedID         string
	Date          string
	Status        string
	ReservedUntil string // set only while Occupied
	LastUpdated   string
}

// BedBooking is one row of bed_bookings.
type BedBooking struct {
	ID                   string
	BedID                string
	PatientID            string
	CheckInDate          string
	CheckInTime          string
	ExpectedCheckoutDate string
	ExpectedCheckoutTime string
	ActualCheckoutDate   string
	ActualCheckoutTime   string
	Status               string
	TotalNights          int
	NightlyRate          int
	TotalCharges         int
	SpecialRequirements  string
	CreatedTimestamp     string
}

// InventoryItem is one row of pharmacy_inventory: a single medication lot.
type InventoryItem struct {
	ID                  string
	MedicationCode      string
	MedicationName      string
	MedicationClass     string
	TherapeuticCategory string
	DosageForm          string
	Strength            string
	UnitCost            float64
	LotNumber           string
	ExpirationDate      string
	QuantityOnHand      int
	ReorderLevel        int
	Supplier            string
	StorageLocation     string
}

// MedicationOrder is one row of medication_orders.
type MedicationOrder struct {
	ID                   string
	AdmissionID          string
	PatientID            string
	MedicationCode       string
	MedicationName       string
	PrescribingPhysician string
	OrderDate            string
	OrderTime            string
	QuantityOrdered      int
	Frequency            string
	DurationDays         int
	Route                string
	Priority             string
	Status               string
	AllergiesChecked     bool
	InteractionsChecked  bool
}

// Dispensing is one row of medication_dispensing: a single administered dose.
type Dispensing struct {
	ID                   string
	OrderID              string
	PatientID            string
	MedicationCode       string
	InventoryID          string
	LotNumber            string
	DispenseDate         string
	DispenseTime         string
	QuantityDispensed    int
	DispensingPharmacist string
	AdministrationTime   string
	AdministeredBy       string
	PatientResponse      string
	SideEffects          string
	CostPerUnit          float64
	TotalCost            float64
}

// AlliedHealthService is one row of allied_health_services.
type AlliedHealthService struct {
	ID                   string
	AdmissionID          string
	PatientID            string
	ServiceCode          string
	ServiceName          string
	ServiceType          string
	Date                 string
	Time                 string
	DurationMinutes      int
	ProviderName         string
	ProviderCredentials  string
	Location             string
	Cost                 float64
	PatientParticipation string
	GoalsMet             bool
	FollowUpNeeded       bool
	Notes                string
	InsuranceCovered     bool
}

// Dataset holds every generated entity in insertion order.
type Dataset struct {
	Seed                 int64
	Patients             []Patient
	Admissions           []Admission
	Procedures           []Procedure
	Beds                 []Bed
	BedAvailability      []BedAvailability
	BedBookings          []BedBooking
	PharmacyInventory    []InventoryItem
	MedicationOrders     []MedicationOrder
	MedicationDispensing []Dispensing
	AlliedHealthServices []AlliedHealthService
}

// Table is one named, column-ordered view of a dataset slice. Rows hold
// string, int, float64 and bool values; nil marks a null.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// nullable turns an empty string into a null cell.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Tables returns the full dataset as column-contracted tables, in the order
// sinks persist them.
func (d *Dataset) Tables() []Table {
	patients := Table{
		Name: "patient_demographics",
		Columns: []string{
			"patient_id", "first_name", "last_name", "date_of_birth", "gender",
			"address", "city", "state", "zip_code", "phone", "email",
			"insurance_provider", "emergency_contact_name", "emergency_contact_phone",
			"patient_status", "registration_date", "last_visit_date", "is_active_patient",
		},
	}
	for _, p := range d.Patients {
		patients.Rows = append(patients.Rows, []any{
			p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
			p.Address, p.City, p.State, p.ZipCode, p.Phone, p.Email,
			p.InsuranceProvider, p.EmergencyContactName, p.EmergencyContactPhone,
			p.Status, p.RegistrationDate, p.LastVisitDate, p.IsActive,
		})
	}

	admissions := Table{
		Name: "patient_admissions",
		Columns: []string{
			"admission_id", "patient_id", "admission_date", "admission_time",
			"discharge_date", "discharge_time", "department_id", "admission_type",
			"chief_complaint", "diagnosis_primary", "diagnosis_secondary",
			"attending_physician", "room_number", "bed_number", "insurance_authorization",
			"total_charges", "weather_condition", "temperature_f",
		},
	}
	for _, a := range d.Admissions {
		admissions.Rows = append(admissions.Rows, []any{
			a.ID, a.PatientID, a.AdmissionDate, a.AdmissionTime,
			nullable(a.DischargeDate), nullable(a.DischargeTime), a.DepartmentID, a.Type,
			a.ChiefComplaint, a.DiagnosisPrimary, nullable(a.DiagnosisSecondary),
			a.AttendingPhysician, nullable(a.RoomNumber), nullable(a.BedNumber), a.InsuranceAuthorization,
			a.TotalCharges, a.WeatherCondition, a.TemperatureF,
		})
	}

	procedures := Table{
		Name: "medical_procedures",
		Columns: []string{
			"procedure_id", "admission_id", "procedure_code", "procedure_name",
			"procedure_date", "procedure_time", "performing_physician",
			"procedure_duration_minutes", "procedure_cost", "anesthesia_type",
			"complications", "procedure_notes",
		},
	}
	for _, p := range d.Procedures {
		procedures.Rows = append(procedures.Rows, []any{
			p.ID, p.AdmissionID, p.Code, p.Name,
			p.Date, p.Time, p.PerformingPhysician,
			p.DurationMinutes, p.Cost, p.AnesthesiaType,
			p.Complications, p.Notes,
		})
	}

	beds := Table{
		Name: "bed_inventory",
		Columns: []string{
			"bed_id", "department_id", "room_number", "bed_number",
			"bed_type", "equipment", "is_active", "daily_rate",
		},
	}
	for _, b := range d.Beds {
		beds.Rows = append(beds.Rows, []any{
			b.ID, b.DepartmentID, b.RoomNumber, b.BedNumber,
			b.Type, b.Equipment, b.IsActive, b.DailyRate,
		})
	}

	availability := Table{
		Name: "bed_availability",
		Columns: []string{
			"availability_id", "bed_id", "date", "status", "reserved_until", "last_updated",
		},
	}
	for _, a := range d.BedAvailability {
		availability.Rows = append(availability.Rows, []any{
			a.ID, a.BedID, a.Date, a.Status, nullable(a.ReservedUntil), a.LastUpdated,
		})
	}

	bookings := Table{
		Name: "bed_bookings",
		Columns: []string{
			"booking_id", "bed_id", "patient_id", "check_in_date", "check_in_time",
			"expected_checkout_date", "expected_checkout_time", "actual_checkout_date",
			"actual_checkout_time", "booking_status", "total_nights", "nightly_rate",
			"total_charges", "special_requirements", "created_timestamp",
		},
	}
	for _, b := range d.BedBookings {
		bookings.Rows = append(bookings.Rows, []any{
			b.ID, b.BedID, b.PatientID, b.CheckInDate, b.CheckInTime,
			b.ExpectedCheckoutDate, b.ExpectedCheckoutTime, nullable(b.ActualCheckoutDate),
			nullable(b.ActualCheckoutTime), b.Status, b.TotalNights, b.NightlyRate,
			b.TotalCharges, nullable(b.SpecialRequirements), b.CreatedTimestamp,
		})
	}

	inventory := Table{
		Name: "pharmacy_inventory",
		Columns: []string{
			"inventory_id", "medication_code", "medication_name", "medication_class",
			"therapeutic_category", "dosage_form", "strength", "unit_cost",
			"lot_number", "expiration_date", "quantity_on_hand", "reorder_level",
			"supplier", "storage_location",
		},
	}
	for _, i := range d.PharmacyInventory {
		inventory.Rows = append(inventory.Rows, []any{
			i.ID, i.MedicationCode, i.MedicationName, i.MedicationClass,
			i.TherapeuticCategory, i.DosageForm, i.Strength, i.UnitCost,
			i.LotNumber, i.ExpirationDate, i.QuantityOnHand, i.ReorderLevel,
			i.Supplier, i.StorageLocation,
		})
	}

	orders := Table{
		Name: "medication_orders",
		Columns: []string{
			"order_id", "admission_id", "patient_id", "medication_code", "medication_name",
			"prescribing_physician", "order_date", "order_time", "quantity_ordered",
			"frequency", "duration_days", "route", "priority", "order_status",
			"allergies_checked", "interactions_checked",
		},
	}
	for _, o := range d.MedicationOrders {
		orders.Rows = append(orders.Rows, []any{
			o.ID, o.AdmissionID, o.PatientID, o.MedicationCode, o.MedicationName,
			o.PrescribingPhysician, o.OrderDate, o.OrderTime, o.QuantityOrdered,
			o.Frequency, o.DurationDays, o.Route, o.Priority, o.Status,
			o.AllergiesChecked, o.InteractionsChecked,
		})
	}

	dispensing := Table{
		Name: "medication_dispensing",
		Columns: []string{
			"dispensing_id", "order_id", "patient_id", "medication_code",
			"inventory_id", "lot_number", "dispense_date", "dispense_time",
			"quantity_dispensed", "dispensing_pharmacist", "administration_time",
			"administered_by", "patient_response", "side_effects", "cost_per_unit", "total_cost",
		},
	}
	for _, r := range d.MedicationDispensing {
		dispensing.Rows = append(dispensing.Rows, []any{
			r.ID, r.OrderID, r.PatientID, r.MedicationCode,
			r.InventoryID, r.LotNumber, r.DispenseDate, r.DispenseTime,
			r.QuantityDispensed, r.DispensingPharmacist, r.AdministrationTime,
			r.AdministeredBy, r.PatientResponse, nullable(r.SideEffects), r.CostPerUnit, r.TotalCost,
		})
	}

	allied := Table{
		Name: "allied_health_services",
		Columns: []string{
			"service_id", "admission_id", "patient_id", "service_code", "service_name",
			"service_type", "service_date", "service_time", "duration_minutes",
			"provider_name", "provider_credentials", "service_location", "service_cost",
			"patient_participation", "goals_met", "follow_up_needed", "notes", "insurance_covered",
		},
	}
	for _, s := range d.AlliedHealthServices {
		allied.Rows = append(allied.Rows, []any{
			s.ID, s.AdmissionID, s.PatientID, s.ServiceCode, s.ServiceName,
			s.ServiceType, s.Date, s.Time, s.DurationMinutes,
			s.ProviderName, s.ProviderCredentials, s.Location, s.Cost,
			s.PatientParticipation, s.GoalsMet, s.FollowUpNeeded, s.Notes, s.InsuranceCovered,
		})
	}

	return []Table{
		patients, admissions, procedures, beds, availability, bookings,
		inventory, orders, dispensing, allied,
	}
}

// FormatCell renders one table cell for text output. Nil renders empty.
func FormatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', 2, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
