package diagnostic

import "fmt"

// buildRecommendations assembles the advice block: risk-level lines first,
// then category-specific tips, then weight management when relevant.
func buildRecommendations(risk RiskLevel, mainCategory string, profile AnimalProfile) []string {
	var recommendations []string

	switch risk {
	case RiskGreen:
		recommendations = append(recommendations,
			"✅ Aucun signe inquiétant détecté",
			"🏥 Continuez les visites de contrôle annuelles",
			"🍽️ Maintenez une alimentation équilibrée",
		)
	case RiskOrange:
		recommendations = append(recommendations,
			"⚠️ Surveillance recommandée",
			"🏥 Consultez votre vétérinaire dans les prochains jours",
			"📝 Notez l'évolution des symptômes",
		)
	case RiskRed:
		recommendations = append(recommendations,
			"🚨 Consultation vétérinaire urgente recommandée",
			"📞 N'attendez pas - contactez un vétérinaire",
		)
	}

	switch mainCategory {
	case "digestion":
		recommendations = append(recommendations,
			"💧 Surveillez l'hydratation",
			"🍽️ Proposez une alimentation digestible",
		)
	case "comportement":
		recommendations = append(recommendations,
			"🏠 Offrez un environnement calme",
			"👥 Limitez les stimulations",
		)
	case "peau":
		recommendations = append(recommendations,
			"🧴 Utilisez un shampooing adapté",
			"🐛 Vérifiez la protection antiparasitaire",
		)
	case "dents":
		recommendations = append(recommendations,
			"🦷 Brossage dentaire régulier recommandé",
			"🍖 Proposez des jouets à mâcher",
		)
	}

	if profile.IsOverweight {
		recommendations = append(recommendations,
			"⚖️ Discutez d'un régime alimentaire avec votre vétérinaire",
			"🏃 Augmentez progressivement l'activité physique",
		)
	}

	return recommendations
}

// buildFollowUpActions lists the concrete next steps keyed by risk level, with
// extra care instructions for digestive and respiratory cases that are not
// green.
func buildFollowUpActions(risk RiskLevel, mainCategory string) []string {
	var actions []string

	switch risk {
	case RiskRed:
		actions = append(actions,
			"📞 Contactez un vétérinaire dès maintenant",
			"🚗 Préparez le transport de votre animal",
			"📝 Notez l'heure d'apparition des symptômes",
		)
	case RiskOrange:
		actions = append(actions,
			"📅 Prenez rendez-vous dans les 24-48h",
			"👀 Surveillez l'évolution des symptômes",
			"📷 Photographiez les symptômes visibles",
		)
	case RiskGreen:
		actions = append(actions,
			"👀 Continuez à observer votre animal",
			"🏥 Maintenez les visites de routine",
		)
	}

	if risk != RiskGreen {
		switch mainCategory {
		case "digestion":
			actions = append(actions,
				"🍽️ Mettez votre animal à la diète quelques heures",
				"💧 Laissez de l'eau fraîche à disposition",
			)
		case "respiration":
			actions = append(actions,
				"🌡️ Gardez votre animal au calme et au frais",
				"🚭 Évitez toute fumée et produit irritant",
			)
		}
	}

	return actions
}

// sterilizationMessage suggests sterilization for intact animals of at least
// six months. Returns "" when the suggestion does not apply.
func sterilizationMessage(profile AnimalProfile) string {
	if profile.IsNeutered || profile.Age < 6 {
		return ""
	}

	gender := "mâle"
	operation := "castration"
	if profile.Gender == GenderFemale {
		gender = "femelle"
		operation = "stérilisation"
	}

	return fmt.Sprintf(
		"💡 %s est un %s %s non stérilisé de %d mois. La %s présente de nombreux bénéfices pour la santé et le comportement. Discutez-en avec votre vétérinaire.",
		profile.Name, profile.Species, gender, profile.Age, operation,
	)
}
