package model

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEnabledLabels(t *testing.T) {
	if got := EnabledLabels(false); len(got) != 4 || got[3] != LabelD {
		t.Errorf("EnabledLabels(false) = %v", got)
	}
	if got := EnabledLabels(true); len(got) != 5 || got[4] != LabelE {
		t.Errorf("EnabledLabels(true) = %v", got)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    ChoiceLabel
		wantErr bool
	}{
		{"A", LabelA, false},
		{"e", LabelE, false},
		{"F", "", true},
		{"AB", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLabel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLabel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExplanationModeVisible(t *testing.T) {
	tests := []struct {
		mode   ExplanationMode
		global bool
		want   bool
	}{
		{ExplanationInherit, true, true},
		{ExplanationInherit, false, false},
		{ExplanationShow, true, true},
		{ExplanationShow, false, false},
		{ExplanationHide, true, false},
		{ExplanationHide, false, false},
	}
	for _, tt := range tests {
		if got := tt.mode.Visible(tt.global); got != tt.want {
			t.Errorf("%v.Visible(%v) = %v, want %v", tt.mode, tt.global, got, tt.want)
		}
	}
}

func TestExplanationModeJSON(t *testing.T) {
	for _, mode := range []ExplanationMode{ExplanationInherit, ExplanationShow, ExplanationHide} {
		data, err := json.Marshal(mode)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", mode, err)
		}
		var got ExplanationMode
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != mode {
			t.Errorf("round trip %v -> %s -> %v", mode, data, got)
		}
	}

	var q Question
	if err := json.Unmarshal([]byte(`{"id":"x","showExplanation":null}`), &q); err != nil {
		t.Fatal(err)
	}
	if q.ShowExplanation != ExplanationInherit {
		t.Errorf("null should decode to inherit, got %v", q.ShowExplanation)
	}

	if err := json.Unmarshal([]byte(`{"showExplanation":"yes"}`), &q); err == nil {
		t.Error("expected error for non-boolean override")
	}
}

func TestExplanationModeYAML(t *testing.T) {
	var q Question
	src := "id: q1\nshowExplanation: false\n"
	if err := yaml.Unmarshal([]byte(src), &q); err != nil {
		t.Fatal(err)
	}
	if q.ShowExplanation != ExplanationHide {
		t.Errorf("got %v, want hide", q.ShowExplanation)
	}

	q.ShowExplanation = ExplanationShow
	out, err := yaml.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "showExplanation: true") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestQuestionHelpers(t *testing.T) {
	q := NewQuestion()
	if q.ID == "" {
		t.Fatal("expected an ID")
	}
	if len(q.Choices) != 5 || !q.EnableChoiceE {
		t.Errorf("unexpected blank question: %+v", q)
	}

	q.ToggleCorrect(LabelB)
	q.ToggleCorrect(LabelD)
	if !q.IsCorrect(LabelB) || !q.IsCorrect(LabelD) {
		t.Errorf("CorrectAnswers = %v", q.CorrectAnswers)
	}
	q.ToggleCorrect(LabelB)
	if q.IsCorrect(LabelB) || len(q.CorrectAnswers) != 1 {
		t.Errorf("CorrectAnswers after untoggle = %v", q.CorrectAnswers)
	}

	c := q.Clone("other")
	c.Choices[LabelA] = "changed"
	c.CorrectAnswers[0] = LabelA
	if q.Choices[LabelA] != "" || q.CorrectAnswers[0] != LabelD {
		t.Error("Clone must not share choices or answers")
	}
	if c.ID != "other" {
		t.Errorf("clone ID = %q", c.ID)
	}
}

func TestExplanationVisible(t *testing.T) {
	q := NewQuestion()
	if q.ExplanationVisible(true) {
		t.Error("empty explanation must never be visible")
	}
	q.Explanation = "because"
	if !q.ExplanationVisible(true) || q.ExplanationVisible(false) {
		t.Error("inherit should follow the global setting")
	}
	q.ShowExplanation = ExplanationHide
	if q.ExplanationVisible(true) {
		t.Error("hide override must win")
	}
}

func TestNewLesson(t *testing.T) {
	l := NewLesson(3)
	if l.Title != "Lesson 3" || len(l.Questions) != 1 {
		t.Errorf("NewLesson(3) = %+v", l)
	}
	if l.QuestionIndex(l.Questions[0].ID) != 0 || l.QuestionIndex("missing") != -1 {
		t.Error("QuestionIndex mismatch")
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"zero density", func(s *Settings) { s.Density = 0 }, "density"},
		{"negative font", func(s *Settings) { s.MCQFontSize = -1 }, "mcqFontSize"},
		{"zero prop font", func(s *Settings) { s.PropFontSize = 0 }, "propFontSize"},
		{"threshold above one", func(s *Settings) { s.FuzzyThreshold = 1.2 }, "fuzzyThreshold"},
		{"negative margin", func(s *Settings) { s.MarginLeft = -3 }, "marginLeft"},
		{"margins eat page", func(s *Settings) { s.MarginLeft = 150; s.MarginRight = 150 }, "no room"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	l1 := NewLesson(1)
	l2 := NewLesson(2)
	l2.Questions = append(l2.Questions, NewQuestion())
	lessons := []Lesson{l1, l2}

	idx := NewIndex(lessons)

	if got, ok := idx.Lesson(l2.ID); !ok || got.Title != "Lesson 2" {
		t.Errorf("Lesson(%s) = %v, %v", l2.ID, got, ok)
	}
	qid := l2.Questions[1].ID
	if _, ok := idx.Question(qid); !ok {
		t.Error("question not indexed")
	}
	if owner, _ := idx.LessonOf(qid); owner != l2.ID {
		t.Errorf("LessonOf = %q, want %q", owner, l2.ID)
	}
	if idx.Ordinal(qid) != 2 {
		t.Errorf("Ordinal = %d, want 2", idx.Ordinal(qid))
	}
	if _, ok := idx.Question("nope"); ok {
		t.Error("unexpected hit")
	}
	if QuestionCount(lessons) != 3 {
		t.Errorf("QuestionCount = %d", QuestionCount(lessons))
	}
}

func TestQuestionValidate(t *testing.T) {
	q := NewQuestion()
	if err := q.Validate(); err != nil {
		t.Errorf("fresh question invalid: %v", err)
	}

	q.CorrectAnswers = []ChoiceLabel{LabelA, LabelA}
	if err := q.Validate(); err == nil {
		t.Error("duplicate correct answer accepted")
	}

	q.CorrectAnswers = []ChoiceLabel{"F"}
	if err := q.Validate(); err == nil {
		t.Error("unknown correct answer accepted")
	}

	q.CorrectAnswers = nil
	q.Choices["Z"] = "x"
	if err := q.Validate(); err == nil {
		t.Error("unknown choice label accepted")
	}
}
