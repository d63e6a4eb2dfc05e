package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
	"github.com/pkg/errors"
)

var (
	// custom validation tags & texts
	gnPhoneTag   = "gnphone"
	gnPhoneText  = "{0} doit être un numéro de téléphone guinéen valide"
	gnPhoneRegex = regexp.MustCompile(`^(\+?224)?6\d{8}$`)

	notBlankTag  = "notblank"
	notBlankText = "{0} ne peut pas être vide"

	requiredTag  = "required"
	requiredText = "ce champ est obligatoire"

	errInvalidData = errors.New("données invalides")
)

// NewValidator builds a validator whose messages are translated to French.
func NewValidator() (*validator.Validate, ut.Translator) {
	locale := fr.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("fr")

	validate := validator.New()
	InitValidators(validate, translator)
	return validate, translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = fr_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(gnPhoneTag, gnPhoneValidation)
	RegisterCustomTranslation(validate, translator, gnPhoneTag, gnPhoneText)

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidateStruct validates s and turns validator failures into a *ValidationError
// holding one translated message per JSON field.
func ValidateStruct(validate *validator.Validate, translator ut.Translator, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return errors.Wrap(err, "validating")
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		flds = append(flds, FieldError{Field: fe.Field(), Error: fe.Translate(translator)})
	}
	return NewValidationError(errInvalidData, flds...)
}

// Custom Global Validators

// gnPhoneValidation accepts Guinean mobile numbers, with or without the +224 prefix and spaces.
func gnPhoneValidation(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	return gnPhoneRegex.MatchString(phone)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
