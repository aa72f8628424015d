package diagnostic

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetocheck-api/internal/catalog"
)

type Handler struct {
	svc Service
	cat *catalog.Catalog
}

func NewHandler(svc Service, cat *catalog.Catalog) *Handler {
	return &Handler{svc: svc, cat: cat}
}

type DiagnosticRequest struct {
	Profile AnimalProfile `json:"profile"`
	Answers []Answer      `json:"answers"`
}

// GetQuestions serves the catalog for the questionnaire UI, optionally
// filtered by species (?species=chien|chat).
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	species := catalog.Species(r.URL.Query().Get("species"))

	var categories []catalog.Category
	if species == "" {
		categories = h.cat.Categories()
	} else {
		if !species.Valid() {
			http.Error(w, "Invalid species", http.StatusBadRequest)
			return
		}
		categories = h.cat.ForSpecies(species)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"categories": categories,
	})
}

// RunDiagnostic validates the request and runs the scoring engine. The core
// assumes a validated profile, so everything is checked here.
func (h *Handler) RunDiagnostic(w http.ResponseWriter, r *http.Request) {
	var req DiagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := validateProfile(req.Profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateAnswers(req.Answers); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.svc.RunDiagnostic(r.Context(), req.Answers, req.Profile)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func validateProfile(p AnimalProfile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if !p.Species.Valid() {
		return fmt.Errorf("profile species must be %q or %q", catalog.SpeciesDog, catalog.SpeciesCat)
	}
	if p.Age < 1 {
		return fmt.Errorf("profile age must be at least 1 month")
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("profile gender must be %q or %q", GenderMale, GenderFemale)
	}
	return nil
}

func validateAnswers(answers []Answer) error {
	for i, answer := range answers {
		if answer.QuestionID == "" {
			return fmt.Errorf("answer %d has no question id", i)
		}
		if !answer.Value.Valid() {
			return fmt.Errorf("answer %d has invalid value %q", i, answer.Value)
		}
	}
	return nil
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/questions", h.GetQuestions)
	r.Post("/diagnostic", h.RunDiagnostic)
}
