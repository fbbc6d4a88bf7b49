package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/session"
)

// quizStateResponse pairs the session snapshot with the question
// currently awaiting an answer (absent once complete or idle).
type quizStateResponse struct {
	session.Snapshot
	Question *quizgen.Question `json:"activeQuestion,omitempty"`
}

func (s *Server) quizState() quizStateResponse {
	return quizStateResponse{
		Snapshot: s.quiz.State(),
		Question: s.quiz.CurrentQuestion(),
	}
}

// handleQuizStart serves POST /api/quiz/start.
func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Questions []quizgen.Question `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.quiz.Start(body.Questions); err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to start quiz")
		return
	}
	respondJSON(w, http.StatusOK, s.quizState())
}

// handleQuizAnswer serves POST /api/quiz/answer. Answering outside an
// active session is a no-op by contract, so the response is always the
// current state.
func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.quiz.Answer(body.Answer)
	respondJSON(w, http.StatusOK, s.quizState())
}

// handleQuizAdvance serves POST /api/quiz/advance.
func (s *Server) handleQuizAdvance(w http.ResponseWriter, r *http.Request) {
	s.quiz.Advance()
	respondJSON(w, http.StatusOK, s.quizState())
}

// handleQuizComplete serves POST /api/quiz/complete.
func (s *Server) handleQuizComplete(w http.ResponseWriter, r *http.Request) {
	s.quiz.Complete()
	respondJSON(w, http.StatusOK, s.quizState())
}

// handleQuizReset serves POST /api/quiz/reset.
func (s *Server) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	s.quiz.Reset()
	respondJSON(w, http.StatusOK, s.quizState())
}

// handleQuizState serves GET /api/quiz.
func (s *Server) handleQuizState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.quizState())
}
