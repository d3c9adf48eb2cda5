package hospital

import (
	"fmt"
	"hash/fnv"

	"github.com/rbotha/hospitalforge/internal/sampling"
)

// generator carries the shared state of one run. Every entity generator
// draws from the same src, in a fixed order, so the whole dataset is a pure
// function of (options, seed).
type generator struct {
	opts GeneratorOptions
	src  *sampling.Source
}

// Generate builds the complete dataset for the given options. A population
// of zero yields an empty patient table; downstream entities that reference
// patients shrink accordingly, while beds and pharmacy inventory are still
// produced.
func Generate(opts GeneratorOptions) (*Dataset, error) {
	opts = opts.WithDefaults()
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Patients < 0 {
		opts.Patients = 0
	}

	// Set seed for reproducibility
	seed := opts.Seed
	if seed == 0 {
		// Generate deterministic seed from output directory name
		h := fnv.New64a()
		_, _ = h.Write([]byte(opts.OutputDir)) // hash.Write never returns an error
		seed = int64(h.Sum64())
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed from '%s': %d\n", opts.OutputDir, seed)
			fmt.Println("  (same directory = same dataset)")
		}
	} else if !opts.Quiet {
		fmt.Printf("Using seed: %d\n", seed)
	}

	g := &generator{
		opts: opts,
		src:  sampling.New(seed),
	}

	patients := g.generatePatients()
	admissions, procedures := g.generateAdmissions(patients)
	beds, availability, bookings := g.generateBeds()
	inventory, orders, dispensing := g.generateMedications(admissions)
	allied := g.generateAlliedHealth(admissions)

	ds := &Dataset{
		Seed:                 seed,
		Patients:             patients,
		Admissions:           admissions,
		Procedures:           procedures,
		Beds:                 beds,
		BedAvailability:      availability,
		BedBookings:          bookings,
		PharmacyInventory:    inventory,
		MedicationOrders:     orders,
		MedicationDispensing: dispensing,
		AlliedHealthServices: allied,
	}

	if !opts.Quiet {
		fmt.Printf("\n✓ Generated %d patients, %d admissions, %d procedures\n",
			len(ds.Patients), len(ds.Admissions), len(ds.Procedures))
		fmt.Printf("✓ %d beds, %d availability records, %d bookings\n",
			len(ds.Beds), len(ds.BedAvailability), len(ds.BedBookings))
		fmt.Printf("✓ %d inventory lots, %d orders, %d dispensings, %d allied services\n",
			len(ds.PharmacyInventory), len(ds.MedicationOrders),
			len(ds.MedicationDispensing), len(ds.AlliedHealthServices))
	}

	return ds, nil
}

// progress reports stage progress to the callback when one is set.
func (g *generator) progress(stage string, current, total int) {
	if g.opts.ProgressCallback != nil {
		g.opts.ProgressCallback(stage, current, total)
	}
}
