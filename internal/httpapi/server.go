// Package httpapi exposes the service over HTTP: the question
// generation endpoint, the question catalog, and the single in-memory
// quiz session.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/quizforge/quizforge/internal/catalog"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/session"
)

// Server holds the handlers' dependencies.
type Server struct {
	gen     *quizgen.Service
	catalog *catalog.Store
	quiz    *session.Quiz
}

// NewServer creates a Server around the given services.
func NewServer(gen *quizgen.Service, cat *catalog.Store) *Server {
	return &Server{
		gen:     gen,
		catalog: cat,
		quiz:    session.New(),
	}
}

// Handler builds the routed HTTP handler, CORS included.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/ai-questions", s.handleGenerate).Methods("POST", "OPTIONS")

	router.HandleFunc("/api/questions", s.handleListQuestions).Methods("GET")
	router.HandleFunc("/api/questions", s.handleCreateQuestion).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/categories", s.handleCategories).Methods("GET")

	router.HandleFunc("/api/quiz/start", s.handleQuizStart).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz/answer", s.handleQuizAnswer).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz/advance", s.handleQuizAdvance).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz/complete", s.handleQuizComplete).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz/reset", s.handleQuizReset).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz", s.handleQuizState).Methods("GET")

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Use POST method to generate questions")
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})

	return corsMiddleware.Handler(router)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
