package validation

import (
	"fmt"
	"math"
)

// Schema is an ordered, immutable set of field rules for one record shape.
type Schema struct {
	name   string
	fields []FieldRule
}

// NewSchema builds a schema from rules in declaration order. A duplicate
// field name is a programmer error and panics.
func NewSchema(name string, rules ...FieldRule) *Schema {
	seen := make(map[string]struct{}, len(rules))
	fields := make([]FieldRule, 0, len(rules))

	for _, rule := range rules {
		if _, dup := seen[rule.Name]; dup {
			panic(fmt.Sprintf("validation: schema %q declares field %q twice", name, rule.Name))
		}
		seen[rule.Name] = struct{}{}
		fields = append(fields, rule.clone())
	}

	return &Schema{name: name, fields: fields}
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the rules in declaration order.
func (s *Schema) Fields() []FieldRule {
	out := make([]FieldRule, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.clone()
	}
	return out
}

// Field returns a copy of the rule for name.
func (s *Schema) Field(name string) (FieldRule, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return FieldRule{}, false
}

// Field names shared by the login and signup payloads.
const (
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldUsername         = "username"
	FieldPhone            = "phone"
	FieldCollege          = "college"
	FieldDegree           = "degree"
	FieldBranch           = "branch"
	FieldPercentage       = "percentage"
	FieldYearOfCompletion = "yearOfCompletion"
	FieldCity             = "city"
)

const (
	MinYearOfCompletion = 1900
	MinPercentage       = 0
	MaxPercentage       = 100
)

// LoginSchema validates email + password credentials.
var LoginSchema = NewSchema("login",
	Email(FieldEmail),
	Password(FieldPassword),
)

// SignupSchema validates a registration payload. The year of completion
// has no upper bound and the percentage may be fractional.
var SignupSchema = NewSchema("signup",
	StringField(FieldUsername, "Name", WithMin(3)),
	Email(FieldEmail),
	StringField(FieldPhone, "Phone", WithMin(10), WithMax(20)),
	Password(FieldPassword),
	// Educational information
	StringField(FieldCollege, "College"),
	StringField(FieldDegree, "Degree"),
	StringField(FieldBranch, "Branch"),
	NumberField(FieldPercentage, "Percentage", MinPercentage, MaxPercentage, PercentageRangeMessage()),
	NumberField(FieldYearOfCompletion, "Year of completion", MinYearOfCompletion, math.Inf(1), InvalidYearMessage()),
	// Location
	StringField(FieldCity, "City"),
)

var registry = map[string]*Schema{
	LoginSchema.Name():  LoginSchema,
	SignupSchema.Name(): SignupSchema,
}

// Lookup resolves a schema by name ("login" or "signup").
func Lookup(name string) (*Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// MustLookup is Lookup for callers that hard-code the name. An unknown name
// is a caller bug and panics.
func MustLookup(name string) *Schema {
	s, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("validation: unknown schema %q", name))
	}
	return s
}
