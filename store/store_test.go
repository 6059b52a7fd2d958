package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/project"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDoc(name string, questions int) *project.Document {
	settings := model.DefaultSettings()
	settings.ProjectName = name
	l := model.NewLesson(1)
	for i := 1; i < questions; i++ {
		l.Questions = append(l.Questions, model.NewQuestion())
	}
	return project.New(settings, []model.Lesson{l})
}

func TestSaveLoad(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	doc := testDoc("Biology", 3)
	doc.Lessons[0].Questions[0].Stem = "What is ATP?"
	doc.Lessons[0].Questions[0].ShowExplanation = model.ExplanationHide
	if err := s.Save(ctx, project.StorageKey, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx, project.StorageKey)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ProjectName != "Biology" || len(got.Lessons[0].Questions) != 3 {
		t.Errorf("loaded %+v", got)
	}
	q := got.Lessons[0].Questions[0]
	if q.Stem != "What is ATP?" || q.ShowExplanation != model.ExplanationHide {
		t.Errorf("question = %+v", q)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if err := s.Save(ctx, "k", testDoc("First", 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "k", testDoc("Second", 2)); err != nil {
		t.Fatal(err)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ProjectName != "Second" || entries[0].Questions != 2 || entries[0].Lessons != 1 {
		t.Errorf("entries = %+v", entries)
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Error("missing update time")
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := openTest(t)
	doc := testDoc("Bad", 1)
	doc.Version = 99
	if err := s.Save(context.Background(), "k", doc); !errors.Is(err, project.ErrVersionMismatch) {
		t.Errorf("err = %v, want ErrVersionMismatch", err)
	}
	if err := s.Save(context.Background(), "", testDoc("x", 1)); err == nil {
		t.Error("empty key accepted")
	}
}

func TestNotFound(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load err = %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Save(ctx, k, testDoc(k, 1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	keys := map[string]bool{}
	for _, e := range entries {
		keys[e.Key] = true
	}
	if len(keys) != 2 || !keys["a"] || !keys["c"] {
		t.Errorf("keys = %v", keys)
	}
}

func TestKeyedSaver(t *testing.T) {
	s := openTest(t)
	if err := s.Saver("auto").Save(testDoc("Auto", 2)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(context.Background(), "auto")
	if err != nil || got.ProjectName != "Auto" {
		t.Errorf("Load() = %v, %v", got, err)
	}
}

func TestInMemory(t *testing.T) {
	s, err := Open(":memory:", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if err := s.Save(context.Background(), "k", testDoc("m", 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background(), "k"); err != nil {
		t.Error(err)
	}
}
