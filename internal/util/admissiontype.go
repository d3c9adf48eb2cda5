package util

import (
	"fmt"
	"strings"

	"github.com/rbotha/hospitalforge/internal/sampling"
)

// AdmissionType represents how a patient entered the hospital
type AdmissionType int

const (
	AdmissionEmergency AdmissionType = iota
	AdmissionElective
	AdmissionUrgent
)

// String returns the display representation of the admission type
func (a AdmissionType) String() string {
	switch a {
	case AdmissionElective:
		return "Elective"
	case AdmissionUrgent:
		return "Urgent"
	default:
		return "Emergency"
	}
}

// ParseAdmissionType parses a string into an AdmissionType
func ParseAdmissionType(s string) (AdmissionType, error) {
	switch strings.ToLower(s) {
	case "emergency":
		return AdmissionEmergency, nil
	case "elective":
		return AdmissionElective, nil
	case "urgent":
		return AdmissionUrgent, nil
	default:
		return AdmissionEmergency, fmt.Errorf("invalid admission type: %s (valid: Emergency, Elective, Urgent)", s)
	}
}

// GenerateAdmissionType draws an admission type with realistic distribution.
// Distribution: 60% Emergency, 30% Elective, 10% Urgent
func GenerateAdmissionType(src *sampling.Source) AdmissionType {
	r := src.Float64()
	if r < 0.60 {
		return AdmissionEmergency
	} else if r < 0.90 {
		return AdmissionElective
	}
	return AdmissionUrgent
}
