package model

import "fmt"

// ChoiceLabel identifies one of the five choice slots of a question.
type ChoiceLabel string

// The fixed label set.
const (
	LabelA ChoiceLabel = "A"
	LabelB ChoiceLabel = "B"
	LabelC ChoiceLabel = "C"
	LabelD ChoiceLabel = "D"
	LabelE ChoiceLabel = "E"
)

var allLabels = [...]ChoiceLabel{LabelA, LabelB, LabelC, LabelD, LabelE}

// Labels returns all five labels in display order.
func Labels() []ChoiceLabel {
	out := make([]ChoiceLabel, len(allLabels))
	copy(out, allLabels[:])
	return out
}

// EnabledLabels returns A-D, plus E when enableE is set.
func EnabledLabels(enableE bool) []ChoiceLabel {
	if enableE {
		return Labels()
	}
	return Labels()[:4]
}

// Valid reports whether l is one of A-E.
func (l ChoiceLabel) Valid() bool {
	return l.Ordinal() >= 0
}

// Ordinal returns the zero-based position of the label, or -1 when invalid.
func (l ChoiceLabel) Ordinal() int {
	for i, x := range allLabels {
		if x == l {
			return i
		}
	}
	return -1
}

// ParseLabel converts a string such as "b" or "B" into a ChoiceLabel.
func ParseLabel(s string) (ChoiceLabel, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if l := ChoiceLabel(string(c)); l.Valid() {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid choice label %q", s)
}
