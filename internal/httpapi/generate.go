package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/quizforge/quizforge/internal/quizgen"
)

// generateResponse is the generation endpoint's success envelope.
type generateResponse struct {
	Success     bool               `json:"success"`
	Questions   []quizgen.Question `json:"questions"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Category    string             `json:"category"`
	Difficulty  int                `json:"difficulty"`
	Count       int                `json:"count"`
}

// handleGenerate serves POST /api/ai-questions.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req quizgen.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	// Resolve here too so the response envelope echoes the difficulty
	// the questions were actually generated at.
	req.Difficulty = req.ResolvedDifficulty()

	questions, err := s.gen.GenerateQuestions(r.Context(), req)
	if err != nil {
		if errors.Is(err, quizgen.ErrInvalidRequest) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate questions",
			Details: err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, generateResponse{
		Success:     true,
		Questions:   questions,
		GeneratedAt: time.Now().UTC(),
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Count:       len(questions),
	})
}
