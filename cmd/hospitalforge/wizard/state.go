// Package wizard provides an interactive TUI for configuring dataset generation.
package wizard

import "github.com/rbotha/hospitalforge/cmd/hospitalforge/wizard/types"

// Aliases so callers only need the wizard package.
type (
	WizardState      = types.WizardState
	PopulationConfig = types.PopulationConfig
	CohortConfig     = types.CohortConfig
	BedConfig        = types.BedConfig
)
