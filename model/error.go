package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"medical-barcode-api/translation"
)

type IError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"` // Value as sent
	Param   string `json:"param,omitempty"` // Rule parameter, e.g. 10 for lte=10
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Detail  string    `json:"detail,omitempty"`
	Errors  []*IError `json:"errors,omitempty"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Errors []*IError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, el := range e.Errors {
		messages = append(messages, el.Message)
	}
	return strings.Join(messages, "; ")
}

// NewFieldError reports a single invalid field outside of struct validation,
// e.g. a query value that could not be decoded.
func NewFieldError(field, tag, message string) *ValidationError {
	return &ValidationError{Errors: []*IError{{Field: field, Tag: tag, Message: message}}}
}

func GetErrors(err error) []*IError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*IError{{Message: err.Error()}}
	}

	var errs []*IError
	for _, err := range verrs {
		var el IError
		el.Field = err.Field()
		el.Tag = err.Tag()
		el.Value = fmt.Sprint(err.Value())
		el.Param = err.Param()
		el.Message = err.Translate(translation.Translator())

		errs = append(errs, &el)
	}

	return errs
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Errors: GetErrors(err)}
}
