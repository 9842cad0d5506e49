package api

import (
	"fmt"

	"github.com/cardbox/cardbox/internal/models"
	"github.com/cardbox/cardbox/internal/services"
	"github.com/cardbox/cardbox/internal/utils"
)

// Views are read-only projections of core state, recomputed per request.
// Every user-authored string is HTML-escaped here and nowhere else; the
// *_html fields are the only ones the frontend may place into markup.

type collectionView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleHTML string `json:"title_html"`
	CardCount int    `json:"card_count"`
}

type cardFaceView struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	FaceHTML string `json:"face_html"`
	Flipped  bool   `json:"flipped"`
}

type sessionView struct {
	Collections []collectionView `json:"collections"`
	Info        string           `json:"info"`
	Open        *collectionView  `json:"open,omitempty"`
	Card        *cardFaceView    `json:"card,omitempty"`
	Counter     string           `json:"counter,omitempty"`
	Empty       string           `json:"empty,omitempty"`
}

func newCollectionView(c *models.Collection) collectionView {
	return collectionView{
		ID:        c.ID,
		Title:     c.Title,
		TitleHTML: utils.EscapeHTML(c.Title),
		CardCount: len(c.Cards),
	}
}

func newSessionView(v services.BrowsingView, locale string) sessionView {
	out := sessionView{
		Collections: make([]collectionView, 0, len(v.Collections)),
		Info:        fmt.Sprintf("%d collection(s)", len(v.Collections)),
	}
	for _, c := range v.Collections {
		out.Collections = append(out.Collections, newCollectionView(c))
	}
	if v.Open == nil {
		return out
	}
	open := newCollectionView(v.Open)
	out.Open = &open
	if v.Card == nil {
		out.Empty = utils.T(locale, "cards.empty")
		return out
	}
	face := v.Card.Question
	if v.Flipped {
		face = v.Card.Answer
	}
	out.Card = &cardFaceView{
		ID:       v.Card.ID,
		Index:    v.CardIndex,
		FaceHTML: utils.EscapeHTML(face),
		Flipped:  v.Flipped,
	}
	out.Counter = fmt.Sprintf(utils.T(locale, "cards.counter"), v.CardIndex+1, len(v.Open.Cards))
	return out
}

type quizSummaryView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleHTML     string `json:"title_html"`
	QuestionCount int    `json:"question_count"`
	Best          *int   `json:"best,omitempty"`
	BestLine      string `json:"best_line"`
}

func bestLine(locale string, best int, hasBest bool, total int) string {
	if hasBest {
		return fmt.Sprintf(utils.T(locale, "quiz.best"), best, total)
	}
	return fmt.Sprintf(utils.T(locale, "quiz.best.none"), total)
}

type quizStateView struct {
	State        string `json:"state"`
	QuizID       string `json:"quiz_id,omitempty"`
	TitleHTML    string `json:"title_html,omitempty"`
	Progress     string `json:"progress,omitempty"`
	ScoreLine    string `json:"score_line,omitempty"`
	QuestionHTML string `json:"question_html,omitempty"`
	QuestionType string `json:"question_type,omitempty"`
	Locked       bool   `json:"locked,omitempty"`
	Correct      *bool  `json:"correct,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
	ResultLine   string `json:"result_line,omitempty"`
	BestLine     string `json:"best_line,omitempty"`
}

func newQuizStateView(v services.QuizView, best int, hasBest bool, locale string) quizStateView {
	out := quizStateView{State: string(v.State)}
	if v.Quiz == nil {
		return out
	}
	out.QuizID = v.Quiz.ID
	out.TitleHTML = utils.EscapeHTML(v.Quiz.Title)
	total := len(v.Quiz.Questions)

	switch v.State {
	case services.StateRunning:
		out.Progress = fmt.Sprintf(utils.T(locale, "quiz.progress"), v.Index+1, total)
		out.ScoreLine = fmt.Sprintf(utils.T(locale, "quiz.score"), v.Score)
		if v.Question != nil {
			out.QuestionHTML = utils.EscapeHTML(v.Question.Question)
			out.QuestionType = string(v.Question.Type)
		}
		out.Locked = v.Locked
		if v.Last != nil {
			correct := v.Last.Correct
			out.Correct = &correct
			key := "quiz.incorrect"
			if correct {
				key = "quiz.correct"
			}
			out.Feedback = utils.T(locale, key)
		}
	case services.StateFinished:
		out.ResultLine = fmt.Sprintf(utils.T(locale, "quiz.result"), v.Score, total)
		out.BestLine = bestLine(locale, best, hasBest, total)
	}
	return out
}
