package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// MessageKind identifies one entry of the error message catalog.
type MessageKind string

const (
	KindRequired        MessageKind = "required"
	KindMinLength       MessageKind = "min_length"
	KindMaxLength       MessageKind = "max_length"
	KindInvalidEmail    MessageKind = "invalid_email"
	KindInvalidYear     MessageKind = "invalid_year"
	KindPercentageRange MessageKind = "percentage_range"
	KindInvalidType     MessageKind = "invalid_type"
)

// templates holds the English text for every kind. Placeholders follow the
// universal-translator convention: {0} is the field label, {1} the bound.
var templates = map[MessageKind]string{
	KindRequired:        "{0} is required",
	KindMinLength:       "{0} must be at least {1} characters",
	KindMaxLength:       "{0} must not be more than {1} characters",
	KindInvalidEmail:    "Invalid email address",
	KindInvalidYear:     "Invalid year",
	KindPercentageRange: "Percentage must be between 0 and 100",
	KindInvalidType:     "{0} must be a {1}",
}

// catalog renders messages through a go-playground translator.
type catalog struct {
	trans ut.Translator
}

func newCatalog() (*catalog, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	trans, ok := uni.GetTranslator(enLocale.Locale())
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	for kind, text := range templates {
		if err := trans.Add(string(kind), text, false); err != nil {
			return nil, fmt.Errorf("register message %q: %w", kind, err)
		}
	}

	return &catalog{trans: trans}, nil
}

// messages is the process-wide catalog. It is written once here and only
// read afterwards.
var messages = mustCatalog()

func mustCatalog() *catalog {
	c, err := newCatalog()
	if err != nil {
		// Registration only fails on a malformed template.
		panic(fmt.Sprintf("validation: %v", err))
	}
	return c
}

// render never fails: a translator miss falls back to plain substitution.
func (c *catalog) render(kind MessageKind, params ...string) string {
	// The translator indexes params by placeholder and panics when short.
	if c != nil && c.trans != nil && len(params) >= strings.Count(templates[kind], "{") {
		if msg, err := c.trans.T(string(kind), params...); err == nil {
			return msg
		}
	}

	text := templates[kind]
	for i, p := range params {
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", p)
	}
	return text
}

// Message renders the catalog entry for kind with the given parameters.
func Message(kind MessageKind, params ...string) string {
	return messages.render(kind, params...)
}

func RequiredMessage(field string) string {
	return Message(KindRequired, field)
}

func MinLengthMessage(field string, n int) string {
	return Message(KindMinLength, field, strconv.Itoa(n))
}

func MaxLengthMessage(field string, n int) string {
	return Message(KindMaxLength, field, strconv.Itoa(n))
}

func InvalidEmailMessage() string {
	return Message(KindInvalidEmail)
}

func InvalidYearMessage() string {
	return Message(KindInvalidYear)
}

func PercentageRangeMessage() string {
	return Message(KindPercentageRange)
}

// InvalidTypeMessage reports a value of the wrong JSON type, e.g.
// "Phone must be a string".
func InvalidTypeMessage(field string, want ValueType) string {
	return Message(KindInvalidType, field, want.String())
}
