//go:build unit
// +build unit

package alternance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMentor() *Mentor {
	return &Mentor{
		ID:               uuid.NewString(),
		FirstName:        "Paul",
		LastName:         "Durand",
		Email:            "paul.durand@atelier.fr",
		Position:         "Chef d'atelier",
		CompanyName:      "Atelier Durand",
		CompanySiret:     "732 829 320 00074",
		ExpertiseDomains: []string{"mécanique"},
		ExperienceYears:  12,
		EducationLevel:   EducationLevelBac2,
		Active:           true,
	}
}

func TestMentor_Validate(t *testing.T) {
	require.NoError(t, validMentor().Validate())

	m := validMentor()
	m.CompanySiret = "12345678901234"
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: CompanySiret, Tag: siret")

	m = validMentor()
	m.EducationLevel = "master"
	err = m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: EducationLevel, Tag: oneof")
}

func TestMentor_CanSuperviseMore(t *testing.T) {
	m := validMentor()

	assert.True(t, m.CanSuperviseMore(0))
	assert.True(t, m.CanSuperviseMore(MaxContractsPerMentor-1))
	assert.False(t, m.CanSuperviseMore(MaxContractsPerMentor))

	m.Active = false
	assert.False(t, m.CanSuperviseMore(0))
}

func TestMentor_FullName(t *testing.T) {
	assert.Equal(t, "Paul Durand", validMentor().FullName())
}
