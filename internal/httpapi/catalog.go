package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/quizforge/quizforge/internal/catalog"
)

// listResponse wraps a catalog page with pagination metadata.
type listResponse struct {
	Questions []catalog.Entry `json:"questions"`
	Total     int             `json:"total"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
}

// handleListQuestions serves GET /api/questions with optional
// category, difficulty, ageRange, educationLevel, limit, offset params.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := catalog.Filter{
		Category:       q.Get("category"),
		AgeRange:       q.Get("ageRange"),
		EducationLevel: q.Get("educationLevel"),
	}
	if d := q.Get("difficulty"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			respondError(w, http.StatusBadRequest, "difficulty must be an integer")
			return
		}
		f.Difficulty = n
	}
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		f.Limit = n
	}
	if o := q.Get("offset"); o != "" {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		f.Offset = n
	}

	entries, err := s.catalog.List(r.Context(), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	total, err := s.catalog.Count(r.Context(), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	respondJSON(w, http.StatusOK, listResponse{
		Questions: entries,
		Total:     total,
		Limit:     limit,
		Offset:    f.Offset,
	})
}

// handleCreateQuestion serves POST /api/questions.
func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var e catalog.Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if e.Category == "" || e.Question == "" || e.CorrectAnswer == "" {
		respondError(w, http.StatusBadRequest, "category, question, and correctAnswer are required")
		return
	}
	if len(e.Options) < 2 {
		respondError(w, http.StatusBadRequest, "at least two options are required")
		return
	}
	if !containsString(e.Options, e.CorrectAnswer) {
		respondError(w, http.StatusBadRequest, "correctAnswer must be one of the options")
		return
	}

	created, err := s.catalog.Create(r.Context(), e)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create question")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleCategories serves GET /api/categories.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Categories())
}

func containsString(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}
