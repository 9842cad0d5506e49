package models

import "testing"

func TestDecodeQuizCatalog(t *testing.T) {
	raw := []byte(`[
		{"id":"q1","title":"Quiz 1","questions":[
			{"type":"text","question":"Capital?","acceptedAnswers":["Paris"]},
			{"type":"true_false","question":"2+2=4","correct":true}
		]}
	]`)
	quizzes, err := DecodeQuizCatalog(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "q1" || len(quizzes[0].Questions) != 2 {
		t.Fatalf("unexpected catalog: %+v", quizzes)
	}
	if quizzes[0].Questions[0].Type != QuestionText || quizzes[0].Questions[1].Correct != true {
		t.Fatalf("unexpected questions: %+v", quizzes[0].Questions)
	}

	if _, err := DecodeQuizCatalog([]byte(`{"id":"q1"}`)); err == nil {
		t.Fatalf("expected error for non-array catalog")
	}
	if _, err := DecodeQuizCatalog([]byte(`[{"title":"no id"}]`)); err == nil {
		t.Fatalf("expected error for quiz without id")
	}
}
