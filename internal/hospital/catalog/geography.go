package catalog

// InsuranceProviders is the payer mix patients are assigned from.
var InsuranceProviders = []string{
	"Blue Cross", "Aetna", "Cigna", "United Healthcare",
	"Medicare", "Medicaid", "Humana", "Kaiser Permanente",
}

// Cities lists the Massachusetts cities patients live in.
var Cities = []string{
	"Boston", "Cambridge", "Somerville", "Newton", "Brookline", "Quincy", "Lynn", "Lowell",
	"Worcester", "Springfield", "New Bedford", "Brockton", "Fall River", "Lawrence", "Malden",
	"Medford", "Waltham", "Framingham", "Arlington", "Lexington", "Watertown", "Belmont",
	"Everett", "Revere", "Chelsea", "Winthrop", "Nahant", "Peabody", "Salem", "Beverly",
}

// ZipPools maps cities with known zip ranges to their pools. Cities without a
// pool get a synthesized 021xx-027xx code.
var ZipPools = map[string][]string{
	"Boston":     {"02101", "02102", "02103", "02104", "02105"},
	"Cambridge":  {"02138", "02139", "02140", "02141", "02142"},
	"Somerville": {"02143", "02144", "02145"},
	"Newton":     {"02458", "02459", "02460", "02461", "02462"},
	"Brookline":  {"02445", "02446", "02447"},
}

// Weather recorded on each admission.
type Weather struct {
	Condition string
	Weight    float64
	TempLowF  int
	TempHighF int
}

var WeatherConditions = []Weather{
	{"Sunny", 0.30, 45, 75},
	{"Cloudy", 0.25, 35, 65},
	{"Rainy", 0.20, 40, 60},
	{"Snowy", 0.15, 20, 35},
	{"Partly Cloudy", 0.10, 40, 70},
}
