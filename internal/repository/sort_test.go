package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorSortColumn(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"fullname", "doctors.full_name"},
		{"FullName", "doctors.full_name"},
		{"specialization", "specializations.name"},
		{"  SPECIALIZATION ", "specializations.name"},
		{"", "doctors.full_name"},
		{"room", "doctors.full_name"},
		{"doctors.id; DROP TABLE doctors", "doctors.full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, doctorSortColumn(tt.token))
		})
	}
}

func TestPatientSortColumn(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"lastname", "full_name"},
		{"LastName", "full_name"},
		{"birthdate", "patients.birth_date"},
		{"BirthDate", "patients.birth_date"},
		{"", "full_name"},
		{"gender", "full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, patientSortColumn(tt.token))
		})
	}
}

func TestUnknownTokenMatchesDefault(t *testing.T) {
	assert.Equal(t, doctorSortColumn(SortFullName), doctorSortColumn("unknown"))
	assert.Equal(t, patientSortColumn(SortLastName), patientSortColumn("unknown"))
}
