package validation

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ValueType is the semantic type a field expects.
type ValueType int

const (
	TypeString ValueType = iota
	TypeNumber
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	default:
		return "value"
	}
}

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind int

const (
	ConstraintRequired ConstraintKind = iota
	ConstraintMinLength
	ConstraintMaxLength
	ConstraintRange
	ConstraintFormat
)

// phase orders evaluation: presence, then bounds, then format.
func (k ConstraintKind) phase() int {
	switch k {
	case ConstraintRequired:
		return 0
	case ConstraintMinLength, ConstraintMaxLength, ConstraintRange:
		return 1
	default:
		return 2
	}
}

// Format names a shape check applied to string values.
type Format int

const (
	FormatEmail Format = iota + 1
)

// Constraint is one check on a field together with the message emitted
// when it fails. Which of Length, Min/Max and Format is meaningful depends
// on Kind.
type Constraint struct {
	Kind    ConstraintKind
	Length  int
	Min     float64
	Max     float64
	Format  Format
	Message string
}

func Required(message string) Constraint {
	return Constraint{Kind: ConstraintRequired, Message: message}
}

func MinLength(n int, message string) Constraint {
	return Constraint{Kind: ConstraintMinLength, Length: n, Message: message}
}

func MaxLength(n int, message string) Constraint {
	return Constraint{Kind: ConstraintMaxLength, Length: n, Message: message}
}

// Range bounds a number inclusively. Use math.Inf for an open side.
func Range(minValue, maxValue float64, message string) Constraint {
	return Constraint{Kind: ConstraintRange, Min: minValue, Max: maxValue, Message: message}
}

func FormatOf(format Format, message string) Constraint {
	return Constraint{Kind: ConstraintFormat, Format: format, Message: message}
}

// FieldRule describes the constraints on one field of a schema.
type FieldRule struct {
	// Name is the record key, e.g. "yearOfCompletion".
	Name string
	// Label is the human-facing name used inside messages, e.g. "Year of completion".
	Label string
	Type  ValueType
	// Trim strips surrounding whitespace before length checks and in the
	// normalized output.
	Trim bool
	// TypeMessage is emitted when the value has the wrong JSON type.
	TypeMessage string
	Constraints []Constraint
}

// Required reports whether the rule demands presence.
func (r FieldRule) Required() bool {
	for _, c := range r.Constraints {
		if c.Kind == ConstraintRequired {
			return true
		}
	}
	return false
}

func (r FieldRule) clone() FieldRule {
	r.Constraints = append([]Constraint(nil), r.Constraints...)
	return r
}

// Check applies the rule to a single value. present is false when the key
// was absent from the input. On success it returns the normalized value;
// otherwise the message of the first violated constraint.
func (r FieldRule) Check(value any, present bool) (any, string, bool) {
	if !present || value == nil {
		if c, ok := r.find(ConstraintRequired); ok {
			return nil, c.Message, false
		}
		return nil, "", true
	}

	switch r.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, r.TypeMessage, false
		}
		if r.Trim {
			s = strings.TrimSpace(s)
		}
		if msg, ok := r.evaluate(func(c Constraint) bool { return checkString(c, s) }); !ok {
			return nil, msg, false
		}
		return s, "", true

	case TypeNumber:
		n, ok := toFloat(value)
		if !ok {
			return nil, r.TypeMessage, false
		}
		if msg, ok := r.evaluate(func(c Constraint) bool { return checkNumber(c, n) }); !ok {
			return nil, msg, false
		}
		return n, "", true
	}

	return nil, r.TypeMessage, false
}

func (r FieldRule) find(kind ConstraintKind) (Constraint, bool) {
	for _, c := range r.Constraints {
		if c.Kind == kind {
			return c, true
		}
	}
	return Constraint{}, false
}

// evaluate runs the non-presence constraints phase by phase and stops at
// the first failure.
func (r FieldRule) evaluate(pass func(Constraint) bool) (string, bool) {
	for phase := 1; phase <= 2; phase++ {
		for _, c := range r.Constraints {
			if c.Kind.phase() != phase {
				continue
			}
			if !pass(c) {
				return c.Message, false
			}
		}
	}
	return "", true
}

func checkString(c Constraint, s string) bool {
	switch c.Kind {
	case ConstraintMinLength:
		return utf8.RuneCountInString(s) >= c.Length
	case ConstraintMaxLength:
		return utf8.RuneCountInString(s) <= c.Length
	case ConstraintFormat:
		return matchesFormat(c.Format, s)
	default:
		// Range does not apply to strings.
		return true
	}
}

func checkNumber(c Constraint, n float64) bool {
	if c.Kind == ConstraintRange {
		return n >= c.Min && n <= c.Max
	}
	return true
}

// toFloat accepts the numeric shapes a decoded JSON body can carry.
func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// formatValidator is safe for concurrent use once constructed.
var formatValidator = validator.New()

func matchesFormat(format Format, s string) bool {
	switch format {
	case FormatEmail:
		return isEmailShape(s) && formatValidator.Var(s, "email") == nil
	default:
		return true
	}
}

// isEmailShape requires exactly one "@", a non-empty local part and a
// dotted domain without empty labels.
func isEmailShape(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")
	if local == "" || !strings.Contains(domain, ".") {
		return false
	}

	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}
