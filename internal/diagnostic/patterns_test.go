package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetocheck-api/internal/catalog"
)

func patternNames(patterns []DangerousPattern) []string {
	names := make([]string, 0, len(patterns))
	for _, p := range patterns {
		names = append(names, p.Name)
	}
	return names
}

func TestDetectGastricTorsion(t *testing.T) {
	answers := []Answer{yes("urgence_3"), yes("digestion_2")}

	patterns := detectPatterns(answers)

	require.Len(t, patterns, 1)
	assert.Equal(t, "Suspicion de torsion gastrique", patterns[0].Name)
	assert.Equal(t, UrgencyImmediate, patterns[0].UrgencyLevel)
	assert.Equal(t, []string{"Ventre gonflé et dur", "Vomissements"}, patterns[0].Symptoms)
}

func TestDetectRespiratoryDistress(t *testing.T) {
	answers := []Answer{yes("respiration_1"), yes("respiration_4"), no("respiration_2")}

	patterns := detectPatterns(answers)

	require.Len(t, patterns, 1)
	assert.Equal(t, "Détresse respiratoire sévère", patterns[0].Name)
	assert.Equal(t, UrgencyImmediate, patterns[0].UrgencyLevel)
}

func TestDetectHemorrhagicSyndrome(t *testing.T) {
	t.Run("two bleeding sites trigger", func(t *testing.T) {
		answers := []Answer{yes("digestion_4"), yes("hydratation_4")}

		patterns := detectPatterns(answers)

		require.Len(t, patterns, 1)
		assert.Equal(t, "Syndrome hémorragique", patterns[0].Name)
	})

	t.Run("a single bleeding site does not", func(t *testing.T) {
		answers := []Answer{yes("digestion_4"), no("hydratation_4"), no("urgence_2")}

		assert.Empty(t, detectPatterns(answers))
	})
}

func TestDetectAcuteAbdominalPain(t *testing.T) {
	answers := []Answer{yes("urgence_3"), yes("locomotion_3")}

	patterns := detectPatterns(answers)

	require.Len(t, patterns, 1)
	assert.Equal(t, "Douleur abdominale aiguë", patterns[0].Name)
	assert.Equal(t, UrgencyUrgent, patterns[0].UrgencyLevel)
}

func TestDetectMultiplePatterns(t *testing.T) {
	answers := []Answer{yes("urgence_3"), yes("digestion_2"), yes("locomotion_3")}

	patterns := detectPatterns(answers)

	assert.Equal(t,
		[]string{"Suspicion de torsion gastrique", "Douleur abdominale aiguë"},
		patternNames(patterns),
	)
}

func TestDetectIgnoresUnknownAnswers(t *testing.T) {
	answers := []Answer{yes("urgence_3"), unknown("digestion_2")}

	assert.Empty(t, detectPatterns(answers))
}

func TestPatternsIndependentOfProfile(t *testing.T) {
	cat := mustCatalog(t)
	answers := []Answer{yes("urgence_3"), yes("digestion_2")}

	dog := Compute(cat, answers, testProfile())
	oldCat := Compute(cat, answers, AnimalProfile{
		Name: "Misty", Species: catalog.SpeciesCat, Age: 96,
		Gender: GenderFemale, IsNeutered: true, IsOverweight: true,
	})

	assert.Equal(t, dog.DangerousPatterns, oldCat.DangerousPatterns)
}

func TestImmediatePatternSetsTimeToVet(t *testing.T) {
	cat := mustCatalog(t)
	answers := []Answer{yes("urgence_3"), yes("digestion_2")}

	result := Compute(cat, answers, testProfile())

	assert.Equal(t, "Immédiatement", result.TimeToVet)
	assert.Contains(t, patternNames(result.DangerousPatterns), "Suspicion de torsion gastrique")
	// urgence_3 is a critical question, so the risk is red here, but the
	// pattern itself does not depend on that.
	assert.Equal(t, RiskRed, result.RiskLevel)
}
