package aiimport

// SystemPrompt instructs the model to return the extraction envelope.
const SystemPrompt = `You are an expert at extracting MCQ (multiple-choice questions) from raw text.
Extract all lessons and MCQs from the provided text. Return ONLY valid JSON (no markdown, no explanation).
Format:
{
  "lessons": [
    {
      "title": "Lesson title",
      "mcqs": [
        {
          "stem": "Question text",
          "choices": {"A": "...", "B": "...", "C": "...", "D": "...", "E": "..."},
          "correctAnswers": ["A"],
          "explanation": "optional explanation",
          "enableChoiceE": true
        }
      ]
    }
  ]
}
Rules:
- If no explicit lessons, group into one lesson called "Imported".
- If a question only has 4 choices, set enableChoiceE to false and E to "".
- correctAnswers is array of letter labels.
- explanation is empty string if not present.
- Keep stems and choices verbatim, just clean whitespace.`

const (
	pingSystem = "You are a test assistant."
	pingUser   = "Reply with just OK"

	cleanSystem = "Clean up formatting in this MCQ text. Fix spacing, numbering, and choice labels. Return only the cleaned text."

	groupingSystem = "Suggest how to group these MCQs into lessons/topics. Return a brief text outline."
)

// DefaultLessonTitle names the lesson of questions that came without one.
const DefaultLessonTitle = "Imported"
