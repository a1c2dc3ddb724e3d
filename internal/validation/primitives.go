package validation

// Default bounds for generic text fields.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 255
)

const (
	EmailMinLength = 3
	EmailMaxLength = 255

	PasswordMinLength = 7
	PasswordMaxLength = 1024
)

type stringBounds struct {
	min int
	max int
}

// StringOption adjusts the bounds of a StringField.
type StringOption func(*stringBounds)

func WithMin(n int) StringOption {
	return func(b *stringBounds) { b.min = n }
}

func WithMax(n int) StringOption {
	return func(b *stringBounds) { b.max = n }
}

// StringField is a required, trimmed text field. Without options it
// accepts 1 to 255 characters.
func StringField(name, label string, opts ...StringOption) FieldRule {
	bounds := stringBounds{min: DefaultMinLength, max: DefaultMaxLength}
	for _, opt := range opts {
		opt(&bounds)
	}

	return FieldRule{
		Name:        name,
		Label:       label,
		Type:        TypeString,
		Trim:        true,
		TypeMessage: InvalidTypeMessage(label, TypeString),
		Constraints: []Constraint{
			Required(RequiredMessage(label)),
			MinLength(bounds.min, MinLengthMessage(label, bounds.min)),
			MaxLength(bounds.max, MaxLengthMessage(label, bounds.max)),
		},
	}
}

// Email is a required, trimmed address of 3 to 255 characters. The format
// is checked only once presence and length pass.
func Email(name string) FieldRule {
	const label = "Email"

	return FieldRule{
		Name:        name,
		Label:       label,
		Type:        TypeString,
		Trim:        true,
		TypeMessage: InvalidTypeMessage(label, TypeString),
		Constraints: []Constraint{
			Required(RequiredMessage(label)),
			MinLength(EmailMinLength, MinLengthMessage(label, EmailMinLength)),
			MaxLength(EmailMaxLength, MaxLengthMessage(label, EmailMaxLength)),
			FormatOf(FormatEmail, InvalidEmailMessage()),
		},
	}
}

// Password is required and bounded to 7..1024 characters. It is never
// trimmed: surrounding whitespace is part of the secret. There are no
// character-class rules.
func Password(name string) FieldRule {
	const label = "Password"

	return FieldRule{
		Name:        name,
		Label:       label,
		Type:        TypeString,
		TypeMessage: InvalidTypeMessage(label, TypeString),
		Constraints: []Constraint{
			Required(RequiredMessage(label)),
			MinLength(PasswordMinLength, MinLengthMessage(label, PasswordMinLength)),
			MaxLength(PasswordMaxLength, MaxLengthMessage(label, PasswordMaxLength)),
		},
	}
}

// NumberField is a required number within [minValue, maxValue]. Either
// bound violation emits rangeMessage.
func NumberField(name, label string, minValue, maxValue float64, rangeMessage string) FieldRule {
	return FieldRule{
		Name:        name,
		Label:       label,
		Type:        TypeNumber,
		TypeMessage: InvalidTypeMessage(label, TypeNumber),
		Constraints: []Constraint{
			Required(RequiredMessage(label)),
			Range(minValue, maxValue, rangeMessage),
		},
	}
}
