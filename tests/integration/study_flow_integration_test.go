//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Runs against a live server started with the sample catalog, e.g.
//
//	CARDBOX_DB_PATH=memory CARDBOX_ADDR=:18080 go run ./cmd/server
//	CARDBOX_TEST_BASE_URL=http://127.0.0.1:18080 go test -tags integration ./tests/integration
func baseURL() string {
	if v := os.Getenv("CARDBOX_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

func TestStudyFlowIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	title := fmt.Sprintf("Integration %d", time.Now().UnixNano())
	var created struct {
		ID string `json:"id"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/collections", map[string]string{"title": title}, &created)
	if created.ID == "" {
		t.Fatalf("expected collection id in response")
	}

	var session struct {
		Open *struct {
			ID        string `json:"id"`
			CardCount int    `json:"card_count"`
		} `json:"open"`
		Counter string `json:"counter"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/collections/"+created.ID+"/open", nil, &session)
	if session.Open == nil || session.Open.ID != created.ID {
		t.Fatalf("unexpected open session: %+v", session)
	}

	doJSON(t, client, http.MethodPost, base+"/api/collections/"+created.ID+"/cards",
		map[string]string{"question": "Question d'intégration ?", "answer": "Oui"}, &session)
	if session.Open.CardCount != 1 {
		t.Fatalf("expected one card, got %d", session.Open.CardCount)
	}
	doJSON(t, client, http.MethodPost, base+"/api/session/flip", nil, &session)
	doJSON(t, client, http.MethodPost, base+"/api/session/next", nil, &session)

	var quizzes struct {
		Quizzes []struct {
			ID            string `json:"id"`
			QuestionCount int    `json:"question_count"`
		} `json:"quizzes"`
	}
	doJSON(t, client, http.MethodGet, base+"/api/quizzes", nil, &quizzes)
	if len(quizzes.Quizzes) == 0 {
		t.Fatalf("server has no quiz catalog")
	}
	quiz := quizzes.Quizzes[0]

	var state struct {
		State     string `json:"state"`
		Progress  string `json:"progress"`
		BestLine  string `json:"best_line"`
		ScoreLine string `json:"score_line"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/quizzes/"+quiz.ID+"/start", nil, &state)
	if state.State != "running" {
		t.Fatalf("quiz did not start: %+v", state)
	}

	// Answer every question (wrongly is fine) and walk to the end.
	for i := 0; i < quiz.QuestionCount; i++ {
		wrong := false
		doJSON(t, client, http.MethodPost, base+"/api/quiz/answer",
			map[string]any{"text": "réponse d'intégration", "true_false": &wrong}, &state)
		doJSON(t, client, http.MethodPost, base+"/api/quiz/next", nil, &state)
	}
	if state.State != "finished" {
		t.Fatalf("quiz did not finish after %d questions: %+v", quiz.QuestionCount, state)
	}
	if state.BestLine == "" {
		t.Fatalf("finished view missing best-score line")
	}

	doJSON(t, client, http.MethodDelete, base+"/api/collections/"+created.ID, nil, nil)
}

func doJSON(t *testing.T, client *http.Client, method, url string, body, out any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
