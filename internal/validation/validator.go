package validation

import (
	"errors"
	"reflect"
	"strings"

	"naplan-prep/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// custom validation tags
const (
	notBlankTag  = "notblank"
	yearLevelTag = "yearlevel"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON field names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterValidation(yearLevelTag, yearLevel)

	registerCustomTranslation(notBlankTag, "{0} cannot be blank")
	registerCustomTranslation(yearLevelTag, "{0} must be one of 3, 5, 7 or 9")
}

func registerCustomTranslation(tag, text string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func yearLevel(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.IsValidYearLevel(int(fl.Field().Int()))
	}
	return false
}

// Validator checks request payloads and parameters and reports problems as
// domain.ValidationErrors.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Struct validates the `validate` tags of s.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	return toValidationErrors(validate.Struct(s), "")
}

// ValidateYearLevel checks an optional year filter. Zero means no filter.
func (v *Validator) ValidateYearLevel(field string, year int) domain.ValidationErrors {
	if year == 0 {
		return nil
	}
	return toValidationErrors(validate.Var(year, yearLevelTag), field)
}

// ValidateID checks a path identifier.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	return toValidationErrors(validate.Var(id, notBlankTag+",max=64"), field)
}

func toValidationErrors(err error, field string) domain.ValidationErrors {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		ve := domain.ValidationError{
			Field:   name,
			Code:    codeForTag(fe.Tag()),
			Message: strings.TrimSpace(strings.TrimPrefix(fe.Translate(translator), fe.Field())),
			Value:   fe.Value(),
		}
		if ve.Code == domain.CodeMissingField {
			ve.Value = nil
		}
		out = append(out, ve)
	}
	return out
}

func codeForTag(tag string) domain.ErrorCode {
	switch tag {
	case "required", notBlankTag:
		return domain.CodeMissingField
	case "min", "max", "gte", "lte", "gt", "lt", "len":
		return domain.CodeOutOfRange
	default:
		return domain.CodeInvalidFormat
	}
}
