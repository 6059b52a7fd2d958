package mcqsheet_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/mcqsheet"
	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/workspace"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_exportPDF() {
	f, err := os.Create("biology.pdf")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Works with both JSON and YAML project files
	if err := mcqsheet.Open("biology.json").PDF(f); err != nil {
		log.Fatal(err)
	}
}

func Example_withOptions() {
	n, err := mcqsheet.Open("biology.yaml").
		Density(0.9).            // Tighter vertical spacing
		Explanations(true).      // Print explanation blocks
		Margins(12, 12, 10, 10). // top, bottom, left, right (mm)
		PageCount()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("pages:", n)
}

func Example_layout() {
	plan, err := mcqsheet.Open("biology.json").Layout()
	if err != nil {
		log.Fatal(err)
	}
	for i := range plan.Pages {
		p := &plan.Pages[i]
		fmt.Printf("page %d: %d blocks\n", i+1, p.BlockCount())
	}
}

func Example_duplicates() {
	pairs, err := mcqsheet.Open("bank.json").Threshold(0.75).Duplicates()
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range pairs {
		fmt.Printf("%s %.2f %s <-> %s\n", p.Kind, p.Similarity, p.QuestionIDA, p.QuestionIDB)
	}
}

func Example_preview() {
	f, err := os.Create("page1.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Page numbers are 1-indexed; scale 2 gives a 1588x2246 image
	if err := mcqsheet.Open("biology.json").PNG(f, 1, 2); err != nil {
		log.Fatal(err)
	}
}

func Example_workspace() {
	ws := workspace.New()
	lessonID, questionID := ws.Active()

	err := ws.UpdateQuestion(lessonID, questionID, func(q *model.Question) {
		q.Stem = "What is 2+2?"
		q.Choices[model.LabelA] = "3"
		q.Choices[model.LabelB] = "4"
		q.CorrectAnswers = []model.ChoiceLabel{model.LabelB}
	})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := ws.DuplicateQuestion(lessonID, questionID); err != nil {
		log.Fatal(err)
	}
	for _, p := range ws.Pairs() {
		_ = ws.SetPairStatus(p.ID, duplicates.StatusIntentional)
	}

	plan, ctx := ws.Render()
	_ = ctx
	fmt.Println("pages:", plan.PageCount())
}
