package validation

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// LoginInput is the typed view of a validated login record.
type LoginInput struct {
	Email string `mapstructure:"email" json:"email"`
	// Password is never serialized back to clients.
	Password string `mapstructure:"password" json:"-"`
}

// SignupInput is the typed view of a validated signup record.
type SignupInput struct {
	Username         string  `mapstructure:"username" json:"username"`
	Email            string  `mapstructure:"email" json:"email"`
	Phone            string  `mapstructure:"phone" json:"phone"`
	Password         string  `mapstructure:"password" json:"-"`
	College          string  `mapstructure:"college" json:"college"`
	Degree           string  `mapstructure:"degree" json:"degree"`
	Branch           string  `mapstructure:"branch" json:"branch"`
	Percentage       float64 `mapstructure:"percentage" json:"percentage"`
	// YearOfCompletion stays float64: fractional years are accepted as sent.
	YearOfCompletion float64 `mapstructure:"yearOfCompletion" json:"yearOfCompletion"`
	City             string  `mapstructure:"city" json:"city"`
}

// DecodeLogin maps a normalized login record onto LoginInput. It does not
// validate; pass only the Value of a valid Result.
func DecodeLogin(rec Record) (LoginInput, error) {
	var in LoginInput
	if err := decode(rec, &in); err != nil {
		return LoginInput{}, err
	}
	return in, nil
}

// DecodeSignup maps a normalized signup record onto SignupInput.
func DecodeSignup(rec Record) (SignupInput, error) {
	var in SignupInput
	if err := decode(rec, &in); err != nil {
		return SignupInput{}, err
	}
	return in, nil
}

// ParseLogin validates input against LoginSchema and decodes it. On bad
// input the error is an Errors value.
func ParseLogin(input Record) (LoginInput, error) {
	result := Validate(LoginSchema, input)
	if !result.Valid() {
		return LoginInput{}, result.Err()
	}
	return DecodeLogin(result.Value())
}

// ParseSignup validates input against SignupSchema and decodes it.
func ParseSignup(input Record) (SignupInput, error) {
	result := Validate(SignupSchema, input)
	if !result.Valid() {
		return SignupInput{}, result.Err()
	}
	return DecodeSignup(result.Value())
}

func decode(rec Record, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
