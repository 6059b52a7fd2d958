package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExplanationMode is the per-question override of the global explanation
// setting.
type ExplanationMode int

const (
	// ExplanationInherit follows Settings.EnableExplanations.
	ExplanationInherit ExplanationMode = iota
	// ExplanationShow explicitly requests the explanation.
	ExplanationShow
	// ExplanationHide suppresses the explanation even when enabled globally.
	ExplanationHide
)

// String returns the string representation of the mode.
func (m ExplanationMode) String() string {
	switch m {
	case ExplanationShow:
		return "show"
	case ExplanationHide:
		return "hide"
	default:
		return "inherit"
	}
}

// Visible reports whether an explanation governed by this mode is painted
// when the global setting is global. Explanations are only ever shown while
// enabled globally; the override can hide but not force them.
func (m ExplanationMode) Visible(global bool) bool {
	return global && m != ExplanationHide
}

// MarshalJSON encodes the mode as null (inherit), true (show) or false (hide).
func (m ExplanationMode) MarshalJSON() ([]byte, error) {
	switch m {
	case ExplanationShow:
		return []byte("true"), nil
	case ExplanationHide:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, true or false.
func (m *ExplanationMode) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("explanation mode: %w", err)
	}
	*m = modeFromBool(v)
	return nil
}

// MarshalYAML encodes the mode the same way as MarshalJSON.
func (m ExplanationMode) MarshalYAML() (interface{}, error) {
	switch m {
	case ExplanationShow:
		return true, nil
	case ExplanationHide:
		return false, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts null, true or false.
func (m *ExplanationMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*m = ExplanationInherit
		return nil
	}
	var b bool
	if err := value.Decode(&b); err != nil {
		return fmt.Errorf("explanation mode: %w", err)
	}
	*m = modeFromBool(&b)
	return nil
}

func modeFromBool(v *bool) ExplanationMode {
	switch {
	case v == nil:
		return ExplanationInherit
	case *v:
		return ExplanationShow
	default:
		return ExplanationHide
	}
}
