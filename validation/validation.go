package validation

import (
	"reflect"
	"strings"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/sirupsen/logrus"
	"medical-barcode-api/helper"
	"medical-barcode-api/translation"
)

var (
	Validator *validator.Validate

	once sync.Once
)

var translationsMessages = map[string]map[string]string{}

// RegisterValidations builds the shared validator. Field names in errors
// come from the `query` tag so messages match the request parameters.
func RegisterValidations() {
	once.Do(register)
}

// Struct validates s with the shared validator.
func Struct(s interface{}) error {
	RegisterValidations()
	return Validator.Struct(s)
}

func register() {
	trans := translation.Translator()

	Validator = validator.New()
	Validator.RegisterTagNameFunc(queryName)

	err := Validator.RegisterValidation("digits", digits)
	if err != nil {
		logrus.Errorf("Err digits validation registration %v", err)
	}

	err = Validator.RegisterValidation("upperalnum", upperAlnum)
	if err != nil {
		logrus.Errorf("Err upperalnum validation registration %v", err)
	}

	err = Validator.RegisterValidation("ean13", ean13)
	if err != nil {
		logrus.Errorf("Err ean13 validation registration %v", err)
	}

	err = enTranslations.RegisterDefaultTranslations(Validator, trans)
	if err != nil {
		logrus.Errorf("Err default translations registration %v", err)
	}

	translationsMessages["en"] = make(map[string]string)
	translationsMessages["en"]["digits"] = "{0} must contain only digits"
	translationsMessages["en"]["upperalnum"] = "{0} must contain only uppercase letters and numbers"
	translationsMessages["en"]["ean13"] = "{0} must be 12 or 13 digits"

	for v := range translationsMessages["en"] {
		addTranslation(trans, v, translationsMessages["en"][v])
	}
}

func addTranslation(trans ut.Translator, tag string, errMessage string) {
	registerFn := func(ut ut.Translator) error {
		return ut.Add(tag, errMessage, false)
	}

	transFn := func(ut ut.Translator, fe validator.FieldError) string {
		t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
		if err != nil {
			return fe.(error).Error()
		}

		return t
	}

	_ = Validator.RegisterTranslation(tag, trans, registerFn, transFn)
}

func queryName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func digits(fl validator.FieldLevel) bool {
	return helper.IsDigits(fl.Field().String())
}

func upperAlnum(fl validator.FieldLevel) bool {
	return helper.IsUpperAlnum(fl.Field().String())
}

func ean13(fl validator.FieldLevel) bool {
	return helper.IsDigitsOfLength(fl.Field().String(), 12, 13)
}
