package duplicates

import "github.com/tsawler/mcqsheet/model"

// ChoiceDuplicate lists the near-identical choices of one question.
type ChoiceDuplicate struct {
	QuestionID string              `json:"mcqId"`
	Labels     []model.ChoiceLabel `json:"labels"`
}

// DetectChoices scans the choices of every question with the given
// configuration.
func DetectChoices(lessons []model.Lesson, config Config) []ChoiceDuplicate {
	return NewDetectorWithConfig(config).Choices(lessons)
}

// Choices compares every unordered pair of enabled choices within each
// question. Both labels of a pair at or above the choice threshold are
// flagged, unless the earlier choice is empty. Labels are listed in display
// order. Questions without flagged choices are omitted.
func (d *Detector) Choices(lessons []model.Lesson) []ChoiceDuplicate {
	var out []ChoiceDuplicate
	for _, l := range lessons {
		for _, q := range l.Questions {
			if labels := d.questionChoices(q); len(labels) > 0 {
				out = append(out, ChoiceDuplicate{QuestionID: q.ID, Labels: labels})
			}
		}
	}
	return out
}

func (d *Detector) questionChoices(q model.Question) []model.ChoiceLabel {
	labels := q.EnabledLabels()
	texts := make([]string, len(labels))
	for i, l := range labels {
		texts[i] = Normalize(q.Choice(l))
	}

	flagged := make([]bool, len(labels))
	for i := range texts {
		if texts[i] == "" {
			continue
		}
		for j := i + 1; j < len(texts); j++ {
			if Jaccard(texts[i], texts[j]) >= d.config.ChoiceThreshold {
				flagged[i] = true
				flagged[j] = true
			}
		}
	}

	var out []model.ChoiceLabel
	for i, f := range flagged {
		if f {
			out = append(out, labels[i])
		}
	}
	return out
}

// ChoiceMap indexes choice duplicates by question ID.
func ChoiceMap(dups []ChoiceDuplicate) map[string][]model.ChoiceLabel {
	m := make(map[string][]model.ChoiceLabel, len(dups))
	for _, d := range dups {
		m[d.QuestionID] = d.Labels
	}
	return m
}
