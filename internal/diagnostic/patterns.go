package diagnostic

// patternRule matches a fixed combination of yes answers. A rule triggers when
// every id in requireAll was answered yes and at least minAny ids from anyOf
// were answered yes.
type patternRule struct {
	requireAll []string
	anyOf      []string
	minAny     int
	pattern    DangerousPattern
}

// patternRules is static configuration. Rules are evaluated independently and
// in order; one batch may trigger several of them.
var patternRules = []patternRule{
	{
		requireAll: []string{"urgence_3", "digestion_2"},
		pattern: DangerousPattern{
			Name:         "Suspicion de torsion gastrique",
			Symptoms:     []string{"Ventre gonflé et dur", "Vomissements"},
			UrgencyLevel: UrgencyImmediate,
			Description:  "Un ventre gonflé et dur associé à des vomissements peut indiquer une torsion de l'estomac, mortelle en quelques heures sans chirurgie.",
		},
	},
	{
		requireAll: []string{"respiration_1", "respiration_4"},
		pattern: DangerousPattern{
			Name:         "Détresse respiratoire sévère",
			Symptoms:     []string{"Respiration rapide ou difficile", "Gencives bleues/violettes"},
			UrgencyLevel: UrgencyImmediate,
			Description:  "Des muqueuses bleues avec une respiration difficile signalent un manque d'oxygène aigu.",
		},
	},
	{
		anyOf:  []string{"digestion_4", "hydratation_4", "urgence_2"},
		minAny: 2,
		pattern: DangerousPattern{
			Name:         "Syndrome hémorragique",
			Symptoms:     []string{"Sang dans les selles ou vomissures", "Sang dans les urines", "Saignement abondant"},
			UrgencyLevel: UrgencyImmediate,
			Description:  "Des saignements sur plusieurs sites peuvent indiquer un trouble de la coagulation ou une hémorragie interne.",
		},
	},
	{
		requireAll: []string{"urgence_3", "locomotion_3"},
		pattern: DangerousPattern{
			Name:         "Douleur abdominale aiguë",
			Symptoms:     []string{"Ventre gonflé et dur", "Douleur au toucher"},
			UrgencyLevel: UrgencyUrgent,
			Description:  "Un abdomen tendu et douloureux à la palpation évoque une urgence abdominale.",
		},
	},
}

// detectPatterns scans the answer batch for known dangerous symptom
// co-occurrences. It only looks at the yes set: neither the profile nor the
// unknown answers influence the outcome.
func detectPatterns(answers []Answer) []DangerousPattern {
	yes := make(map[string]bool, len(answers))
	for _, answer := range answers {
		if answer.Value == AnswerYes {
			yes[answer.QuestionID] = true
		}
	}

	var detected []DangerousPattern
	for _, rule := range patternRules {
		if rule.matches(yes) {
			detected = append(detected, rule.pattern)
		}
	}
	return detected
}

func (r patternRule) matches(yes map[string]bool) bool {
	for _, id := range r.requireAll {
		if !yes[id] {
			return false
		}
	}
	if len(r.anyOf) > 0 {
		count := 0
		for _, id := range r.anyOf {
			if yes[id] {
				count++
			}
		}
		if count < r.minAny {
			return false
		}
	}
	return true
}
