package catalog

var (
	BedTypes       = []string{"Standard", "ICU", "Private", "Semi-Private", "Isolation"}
	BedTypeWeights = []float64{0.5, 0.15, 0.15, 0.15, 0.05}

	EquipmentOptions = []string{"Basic", "Cardiac Monitor", "Ventilator", "Dialysis", "Isolation Equipment"}

	// OutOfServiceStatuses are the non-clinical bed states.
	OutOfServiceStatuses = []string{"Maintenance", "Cleaning", "Out of Service"}

	// SpecialRequirements includes the empty string for bookings without one.
	SpecialRequirements = []string{"", "Isolation", "Cardiac Monitor", "Quiet Room", "Window View"}
)
