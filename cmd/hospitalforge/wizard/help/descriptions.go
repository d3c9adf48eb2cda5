package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"patients": {
		Title:       "PATIENTS",
		Description: "Number of patients to generate.",
		Details:     "Every other entity (admissions, procedures, orders) scales with this count.",
	},
	"seed": {
		Title:       "SEED",
		Description: "Random seed for reproducibility.",
		Details: `Same seed = identical dataset on every run.
0 derives a seed from the output directory name.`,
	},
	"output": {
		Title:       "OUTPUT DIRECTORY",
		Description: "Directory where CSV files will be created.",
		Details:     "Will be created if it doesn't exist. One CSV per entity plus manifest.yaml.",
	},
	"reference_date": {
		Title:       "REFERENCE DATE",
		Description: "The simulated 'today' that anchors all timelines.",
		Details: `Format: YYYY-MM-DD. Leave empty for the built-in default (2024-12-15).
Open admissions, bed windows and expiration dates are all relative to this date.`,
	},
	"active_admission_rate": {
		Title:       "ACTIVE ADMISSION RATE",
		Description: "Share of active patients with an admission history.",
		Details:     "Range 0-1. Default 0.35.",
	},
	"historic_admission_rate": {
		Title:       "HISTORIC ADMISSION RATE",
		Description: "Share of historic patients with an admission history.",
		Details:     "Range 0-1. Default 0.15.",
	},
	"current_admission_rate": {
		Title:       "CURRENT ADMISSION RATE",
		Description: "Share of active patients currently in a bed.",
		Details:     "Range 0-1. Default 0.05. These patients can receive open admissions.",
	},
	"procedure_rate": {
		Title:       "PROCEDURE RATE",
		Description: "Chance an admission includes procedures.",
		Details:     "Range 0-1. Default 0.6.",
	},
	"medication_rate": {
		Title:       "MEDICATION RATE",
		Description: "Chance an admission includes medication orders.",
		Details:     "Range 0-1. Default 0.85.",
	},
	"allied_health_rate": {
		Title:       "ALLIED HEALTH RATE",
		Description: "Chance an admission includes allied health services.",
		Details:     "Range 0-1. Default 0.4. Covers physio, OT, speech, nutrition, social work.",
	},
	"avg_admissions": {
		Title:       "AVG ADMISSIONS PER PATIENT",
		Description: "Poisson mean for admissions per patient with history.",
		Details:     "Default 1.4. Every patient with history gets at least one admission.",
	},
	"avg_procedures": {
		Title:       "AVG PROCEDURES PER ADMISSION",
		Description: "Poisson mean for procedures per admission.",
		Details:     "Default 1.8. Applies only to admissions that include procedures.",
	},
	"avg_medications": {
		Title:       "AVG MEDICATIONS PER ADMISSION",
		Description: "Poisson mean for medication orders per admission.",
		Details:     "Default 3.2. Orders draw from the admitting department's formulary.",
	},
	"avg_allied": {
		Title:       "AVG ALLIED SERVICES PER ADMISSION",
		Description: "Poisson mean for allied health services per admission.",
		Details:     "Default 2.1.",
	},
	"bed_window_days": {
		Title:       "BED WINDOW DAYS",
		Description: "Days of bed availability history ending at the reference date.",
		Details:     "Default 365. One availability row per bed per day, so this drives output size.",
	},
	"weekday_occupancy": {
		Title:       "WEEKDAY OCCUPANCY",
		Description: "Chance a bed is occupied on a weekday.",
		Details:     "Range 0-1. Default 0.75.",
	},
	"weekend_occupancy": {
		Title:       "WEEKEND OCCUPANCY",
		Description: "Chance a bed is occupied on a weekend.",
		Details:     "Range 0-1. Default 0.65.",
	},
	"out_of_service_rate": {
		Title:       "OUT OF SERVICE RATE",
		Description: "Chance an unoccupied bed is out of service on a given day.",
		Details:     "Range 0-1. Default 0.05. Covers maintenance, cleaning and repairs.",
	},
	"action": {
		Title:       "ACTION",
		Description: "What to do with this configuration.",
		Details: `Generate: run the generator now
Save: export the configuration to YAML for later runs`,
	},
	"config_path": {
		Title:       "CONFIG PATH",
		Description: "Where to save the YAML configuration.",
		Details:     "Run it later with: hospitalforge --config <path>",
	},
}
