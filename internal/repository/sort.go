package repository

import "strings"

// Sort tokens accepted by the list endpoints. Matching is case-insensitive
// and anything else falls back to the full-name ordering.
const (
	SortFullName       = "fullname"
	SortSpecialization = "specialization"
	SortLastName       = "lastname"
	SortBirthDate      = "birthdate"
)

func normalizeSortToken(sortBy string) string {
	return strings.ToLower(strings.TrimSpace(sortBy))
}

func doctorSortColumn(sortBy string) string {
	switch normalizeSortToken(sortBy) {
	case SortSpecialization:
		return "specializations.name"
	case SortFullName:
		return "doctors.full_name"
	default:
		return "doctors.full_name"
	}
}

func patientSortColumn(sortBy string) string {
	switch normalizeSortToken(sortBy) {
	case SortBirthDate:
		return "patients.birth_date"
	case SortLastName:
		return "full_name"
	default:
		return "full_name"
	}
}
