package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory indicates a value that is not one of the four categories.
var ErrUnknownCategory = errors.New("unknown stress category")

// Lower bounds of each band; scores below ModerateFrom are low.
const (
	ModerateFrom = 14
	HighFrom     = 27
	SevereFrom   = 41
)

// Category is a stress band. Only Low, Moderate, High and Severe are valid;
// the zero value is not.
type Category struct {
	name string
}

var (
	Low      = Category{name: "low"}
	Moderate = Category{name: "moderate"}
	High     = Category{name: "high"}
	Severe   = Category{name: "severe"}
)

// Categories lists every category from least to most severe.
func Categories() []Category {
	return []Category{Low, Moderate, High, Severe}
}

// CategoryForScore maps a score to its band.
func CategoryForScore(score int) Category {
	switch {
	case score >= SevereFrom:
		return Severe
	case score >= HighFrom:
		return High
	case score >= ModerateFrom:
		return Moderate
	default:
		return Low
	}
}

// ParseCategory converts a category name, case-insensitively.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case Low.name:
		return Low, nil
	case Moderate.name:
		return Moderate, nil
	case High.name:
		return High, nil
	case Severe.name:
		return Severe, nil
	default:
		return Category{}, fmt.Errorf("%w %q (expected low|moderate|high|severe)", ErrUnknownCategory, value)
	}
}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool {
	switch c {
	case Low, Moderate, High, Severe:
		return true
	default:
		return false
	}
}

// String returns the lowercase category name.
func (c Category) String() string {
	if c.name == "" {
		return "unknown"
	}
	return c.name
}

// Label returns the heading shown with a result.
func (c Category) Label() string {
	switch c {
	case Low:
		return "Low Stress"
	case Moderate:
		return "Moderate Stress"
	case High:
		return "High Stress"
	case Severe:
		return "Severe Stress"
	default:
		return ""
	}
}

// Summary returns the one-line interpretation shown under the label.
func (c Category) Summary() string {
	switch c {
	case Low:
		return "Your stress levels appear to be well managed."
	case Moderate:
		return "You are experiencing a moderate level of stress."
	case High:
		return "Your stress levels are concerning and require attention."
	case Severe:
		return "Your stress levels are very high and need immediate attention."
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCategory
	}
	return []byte(c.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
