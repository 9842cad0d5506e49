package services

import (
	"sync"

	"github.com/cardbox/cardbox/internal/models"
	"github.com/cardbox/cardbox/internal/utils"
)

// EngineState names the quiz engine's coarse states. Within running, each
// question cycles unanswered -> locked.
type EngineState string

const (
	StateIdle     EngineState = "idle"
	StateRunning  EngineState = "running"
	StateFinished EngineState = "finished"
)

// Answer is a submitted response. Exactly one field applies, matching the
// current question's type.
type Answer struct {
	Text      string `json:"text,omitempty"`
	TrueFalse *bool  `json:"true_false,omitempty"`
}

// SubmitResult reports one answer check: whether it was correct and the
// running score after it.
type SubmitResult struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

// QuizView is the engine snapshot the presentation layer renders from.
type QuizView struct {
	State    EngineState
	Quiz     *models.Quiz
	Index    int
	Question *models.Question
	Score    int
	Locked   bool
	Last     *SubmitResult
}

// QuizEngine runs one strict linear question sequence at a time over a
// read-only catalog, and records best-score-per-quiz through the gateway.
// The per-question lock guards against duplicate submissions; it is not a
// concurrency primitive.
type QuizEngine struct {
	mu      sync.Mutex
	gateway *Gateway
	catalog []*models.Quiz
	best    map[string]int

	state  EngineState
	quiz   *models.Quiz
	index  int
	score  int
	locked bool
	last   *SubmitResult
}

func NewQuizEngine(gateway *Gateway, catalog []*models.Quiz) *QuizEngine {
	return &QuizEngine{
		gateway: gateway,
		catalog: catalog,
		best:    gateway.LoadBestScores(),
		state:   StateIdle,
	}
}

// Catalog returns the loaded quizzes in document order.
func (e *QuizEngine) Catalog() []*models.Quiz {
	return append([]*models.Quiz(nil), e.catalog...)
}

// BestScore returns the recorded best for a quiz id, reflecting any score
// committed this session.
func (e *QuizEngine) BestScore(quizID string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	best, ok := e.best[quizID]
	return best, ok
}

func (e *QuizEngine) findQuiz(id string) *models.Quiz {
	for _, q := range e.catalog {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// Start begins a run of the named quiz: question index 0, score 0, answer
// input unlocked. Rejected if the id is not in the catalog, leaving the
// engine state untouched.
func (e *QuizEngine) Start(quizID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	quiz := e.findQuiz(quizID)
	if quiz == nil {
		return NewNotFoundError("quiz not found")
	}
	e.quiz = quiz
	e.index = 0
	e.score = 0
	e.locked = false
	e.last = nil
	e.state = StateRunning
	return nil
}

// Restart re-runs the current quiz from the finished state.
func (e *QuizEngine) Restart() error {
	e.mu.Lock()
	quiz := e.quiz
	e.mu.Unlock()
	if quiz == nil {
		return NewConflictError("no quiz to restart")
	}
	return e.Start(quiz.ID)
}

// Submit checks the response against the current question and locks it.
// While locked, repeated submissions return the first result unchanged and
// never move the score.
func (e *QuizEngine) Submit(a Answer) (*SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return nil, NewConflictError("no quiz in progress")
	}
	if e.index >= len(e.quiz.Questions) {
		return nil, NewConflictError("no current question")
	}
	if e.locked {
		return e.last, nil
	}

	q := e.quiz.Questions[e.index]
	var correct bool
	switch q.Type {
	case models.QuestionText:
		want := utils.NormalizeAnswer(a.Text)
		for _, accepted := range q.AcceptedAnswers {
			if utils.NormalizeAnswer(accepted) == want {
				correct = true
				break
			}
		}
	case models.QuestionTrueFalse:
		if a.TrueFalse == nil {
			return nil, NewInvalidError("true_false answer required")
		}
		correct = *a.TrueFalse == q.Correct
	default:
		return nil, NewInvalidError("unknown question type")
	}

	if correct {
		e.score++
	}
	e.locked = true
	e.last = &SubmitResult{Correct: correct, Score: e.score}
	return e.last, nil
}

// Next advances to the following question, or finishes the quiz after the
// last one. Rejected while the current question is still unanswered.
func (e *QuizEngine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return NewConflictError("no quiz in progress")
	}
	if !e.locked {
		return NewConflictError("current question not answered")
	}
	if e.index < len(e.quiz.Questions)-1 {
		e.index++
		e.locked = false
		e.last = nil
		return nil
	}
	e.finish()
	return nil
}

// finish commits the session's final score: the stored best is overwritten
// only when none exists or the new score strictly exceeds it. Caller holds
// the lock.
func (e *QuizEngine) finish() {
	prev, ok := e.best[e.quiz.ID]
	if !ok || e.score > prev {
		e.best[e.quiz.ID] = e.score
		e.gateway.SaveBestScores(e.best)
	}
	e.state = StateFinished
}

// View snapshots the engine for rendering.
func (e *QuizEngine) View() QuizView {
	e.mu.Lock()
	defer e.mu.Unlock()
	view := QuizView{
		State:  e.state,
		Quiz:   e.quiz,
		Index:  e.index,
		Score:  e.score,
		Locked: e.locked,
		Last:   e.last,
	}
	if e.state == StateRunning && e.index < len(e.quiz.Questions) {
		view.Question = e.quiz.Questions[e.index]
	}
	return view
}
