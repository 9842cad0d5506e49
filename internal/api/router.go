package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cardbox/cardbox/internal/middleware"
	"github.com/cardbox/cardbox/internal/services"
	"github.com/cardbox/cardbox/internal/utils"
)

// Router is the thin presentation adapter: it decodes requests, calls core
// operations and re-renders state snapshots. No quiz or collection semantics
// live here.
type Router struct {
	cards *services.CollectionService
	quiz  *services.QuizEngine
}

func NewRouter(cards *services.CollectionService, quiz *services.QuizEngine) *Router {
	return &Router{cards: cards, quiz: quiz}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/collections", rt.handleCollections)       // GET list, POST create
	mux.HandleFunc("/api/collections/", rt.handleCollectionScoped) // DELETE {id}, POST {id}/open, POST {id}/cards
	mux.HandleFunc("/api/session", rt.handleSession)               // GET
	mux.HandleFunc("/api/session/", rt.handleSessionAction)        // POST next|prev|flip
	mux.HandleFunc("/api/quizzes", rt.handleQuizzes)               // GET
	mux.HandleFunc("/api/quizzes/", rt.handleQuizScoped)           // POST {id}/start
	mux.HandleFunc("/api/quiz", rt.handleQuiz)                     // GET
	mux.HandleFunc("/api/quiz/", rt.handleQuizAction)              // POST answer|next|restart
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusForCode(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		writeJSON(w, statusForCode(se.Code), map[string]any{"error": se.Message, "code": se.Code})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (rt *Router) sessionView(r *http.Request) sessionView {
	return newSessionView(rt.cards.View(), middleware.LocaleFromContext(r.Context()))
}

func (rt *Router) quizView(r *http.Request) quizStateView {
	v := rt.quiz.View()
	var best int
	var hasBest bool
	if v.Quiz != nil {
		best, hasBest = rt.quiz.BestScore(v.Quiz.ID)
	}
	return newQuizStateView(v, best, hasBest, middleware.LocaleFromContext(r.Context()))
}

// GET/POST /api/collections
func (rt *Router) handleCollections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, rt.sessionView(r))
	case http.MethodPost:
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		col, err := rt.cards.CreateCollection(req.Title)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newCollectionView(col))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// DELETE /api/collections/{id}
// POST   /api/collections/{id}/open
// POST   /api/collections/{id}/cards
func (rt *Router) handleCollectionScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/collections/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := rt.cards.DeleteCollection(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rt.sessionView(r))
		return
	}

	if len(parts) != 2 || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	switch parts[1] {
	case "open":
		if _, err := rt.cards.OpenCollection(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rt.sessionView(r))
	case "cards":
		var req struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := rt.cards.AddCard(id, req.Question, req.Answer); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rt.sessionView(r))
	default:
		http.NotFound(w, r)
	}
}

// GET /api/session
func (rt *Router) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, rt.sessionView(r))
}

// POST /api/session/next|prev|flip
func (rt *Router) handleSessionAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch strings.TrimPrefix(r.URL.Path, "/api/session/") {
	case "next":
		rt.cards.NextCard()
	case "prev":
		rt.cards.PrevCard()
	case "flip":
		rt.cards.Flip()
	default:
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rt.sessionView(r))
}

// GET /api/quizzes
func (rt *Router) handleQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	quizzes := rt.quiz.Catalog()
	out := make([]quizSummaryView, 0, len(quizzes))
	for _, q := range quizzes {
		view := quizSummaryView{
			ID:            q.ID,
			Title:         q.Title,
			TitleHTML:     utils.EscapeHTML(q.Title),
			QuestionCount: len(q.Questions),
		}
		if best, ok := rt.quiz.BestScore(q.ID); ok {
			b := best
			view.Best = &b
			view.BestLine = bestLine(locale, best, true, len(q.Questions))
		} else {
			view.BestLine = bestLine(locale, 0, false, len(q.Questions))
		}
		out = append(out, view)
	}
	writeJSON(w, http.StatusOK, map[string]any{"quizzes": out})
}

// POST /api/quizzes/{id}/start
func (rt *Router) handleQuizScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/quizzes/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "start" || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := rt.quiz.Start(parts[0]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt.quizView(r))
}

// GET /api/quiz
func (rt *Router) handleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, rt.quizView(r))
}

// POST /api/quiz/answer|next|restart
func (rt *Router) handleQuizAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch strings.TrimPrefix(r.URL.Path, "/api/quiz/") {
	case "answer":
		var answer services.Answer
		if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := rt.quiz.Submit(answer); err != nil {
			writeError(w, err)
			return
		}
	case "next":
		if err := rt.quiz.Next(); err != nil {
			writeError(w, err)
			return
		}
	case "restart":
		if err := rt.quiz.Restart(); err != nil {
			writeError(w, err)
			return
		}
	default:
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rt.quizView(r))
}
