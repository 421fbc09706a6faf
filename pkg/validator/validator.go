package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// ValidateStruct checks s against its `validate` tags and folds every failed
// field into a single error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("Field: %s, Tag: %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += ", Param: " + fe.Param()
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
