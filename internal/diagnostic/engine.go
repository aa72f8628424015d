package diagnostic

import (
	"math"

	"vetocheck-api/internal/catalog"
)

// emergencyPhone is the French veterinary emergency line.
const emergencyPhone = "3115"

// Compute runs the full diagnostic over an answer batch and a validated
// profile. It is pure and deterministic: no I/O, no shared state, safe to call
// concurrently with distinct inputs.
//
// Answers whose question id is not in the catalog are skipped. Duplicate
// answers for one question are collapsed, the last one winning. An empty batch
// degenerates to a green result with score 0 and uncertainty 0; both divisions
// below are guarded against that case.
func Compute(cat *catalog.Catalog, answers []Answer, profile AnimalProfile) DiagnosticResult {
	answers = dedupe(answers)

	var (
		totalScore       float64
		maxPossibleScore int
		unknownCount     int
		criticalSymptoms []string
		categoryScores   = make(map[string]int)
	)

	for _, answer := range answers {
		question, ok := cat.ByID(answer.QuestionID)
		if !ok {
			continue
		}

		maxPossibleScore += question.Weight

		switch answer.Value {
		case AnswerUnknown:
			unknownCount++
			// Unresolved symptoms carry half their weight rather than
			// zero, to avoid false reassurance.
			totalScore += float64(question.Weight) * 0.5
		case AnswerYes:
			totalScore += float64(question.Weight)
			if question.IsCritical {
				criticalSymptoms = append(criticalSymptoms, question.Text)
			}
			// Only firm yes answers count towards category dominance.
			categoryScores[question.Category] += question.Weight
		}
	}

	uncertaintyRate := 0
	if len(answers) > 0 {
		uncertaintyRate = int(math.Round(float64(unknownCount) / float64(len(answers)) * 100))
	}

	scorePercentage := 0.0
	if maxPossibleScore > 0 {
		scorePercentage = totalScore / float64(maxPossibleScore) * 100
	}

	riskLevel := RiskGreen
	switch {
	case len(criticalSymptoms) > 0:
		riskLevel = RiskRed
	case scorePercentage >= 40:
		riskLevel = RiskRed
	case scorePercentage >= 20 || uncertaintyRate >= 40:
		riskLevel = RiskOrange
	}

	mainCategory := dominantCategory(cat, categoryScores)
	patterns := detectPatterns(answers)

	result := DiagnosticResult{
		RiskLevel:         riskLevel,
		Score:             int(math.Round(scorePercentage)),
		UncertaintyRate:   uncertaintyRate,
		MainCategory:      mainCategory,
		Recommendations:   buildRecommendations(riskLevel, mainCategory, profile),
		CriticalSymptoms:  criticalSymptoms,
		DangerousPatterns: patterns,
		FollowUpActions:   buildFollowUpActions(riskLevel, mainCategory),
		ConfidenceLevel:   confidenceLevel(uncertaintyRate, unknownCount),
		TimeToVet:         timeToVet(riskLevel, patterns),
	}

	if riskLevel == RiskRed {
		if len(criticalSymptoms) > 0 {
			result.EmergencyAlert = "⚠️ URGENCE VÉTÉRINAIRE - Contactez immédiatement un vétérinaire ou appelez le " + emergencyPhone + " (urgences vétérinaires)"
			result.VetContact = &VetContact{Phone: emergencyPhone, IsEmergency: true}
		} else {
			result.EmergencyAlert = "🚨 Consultation vétérinaire recommandée rapidement"
		}
	}

	result.SterilizationMessage = sterilizationMessage(profile)

	return result
}

// dedupe collapses the batch to at most one answer per question id, keeping
// the last occurrence at the position of the first.
func dedupe(answers []Answer) []Answer {
	if len(answers) < 2 {
		return answers
	}
	out := make([]Answer, 0, len(answers))
	index := make(map[string]int, len(answers))
	for _, answer := range answers {
		if at, seen := index[answer.QuestionID]; seen {
			out[at] = answer
			continue
		}
		index[answer.QuestionID] = len(out)
		out = append(out, answer)
	}
	return out
}

// dominantCategory picks the category with the highest yes-weighted total.
// Ties resolve to the category appearing first in the catalog, so results stay
// reproducible. Without any yes answer the generic category wins.
func dominantCategory(cat *catalog.Catalog, scores map[string]int) string {
	best := catalog.DefaultCategoryID
	bestScore := 0
	for _, category := range cat.Categories() {
		if score := scores[category.ID]; score > bestScore {
			best = category.ID
			bestScore = score
		}
	}
	return best
}

// confidenceLevel discounts trust in the result by both the proportion and the
// raw count of unknown answers, floored at 40.
func confidenceLevel(uncertaintyRate, unknownCount int) int {
	penalty := unknownCount * 5
	if penalty > 30 {
		penalty = 30
	}
	confidence := 100 - uncertaintyRate - penalty
	if confidence < 40 {
		confidence = 40
	}
	return confidence
}

func timeToVet(risk RiskLevel, patterns []DangerousPattern) string {
	for _, p := range patterns {
		if p.UrgencyLevel == UrgencyImmediate {
			return "Immédiatement"
		}
	}
	switch risk {
	case RiskRed:
		return "2-4 heures"
	case RiskOrange:
		return "24-48 heures"
	}
	return ""
}
