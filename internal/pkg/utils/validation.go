package utils

import (
	"medical-portal/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate              *validator.Validate
	reEgyptianMobilePhone = regexp.MustCompile(constvars.RegexEgyptianMobilePhone)
	reContactEmail        = regexp.MustCompile(constvars.RegexContactEmail)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("egyptian_phone", validateEgyptianPhone)
	validate.RegisterValidation("contact_email", validateContactEmail)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsEgyptianMobilePhone accepts 01[0125]XXXXXXXX and the +20 form without the
// leading zero.
func IsEgyptianMobilePhone(phone string) bool {
	return reEgyptianMobilePhone.MatchString(phone)
}

// IsContactEmail accepts local@domain.tld shapes: a single @, a dot after it
// and no whitespace.
func IsContactEmail(email string) bool {
	return reContactEmail.MatchString(email)
}

func validateEgyptianPhone(fl validator.FieldLevel) bool {
	return IsEgyptianMobilePhone(fl.Field().String())
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return IsContactEmail(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
