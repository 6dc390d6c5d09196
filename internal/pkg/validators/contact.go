package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var frenchPhonePattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)[1-9](?:[\s.-]?\d{2}){4}$`)

// FrenchPhoneValidation accepts French landline and mobile numbers written as
// 0612345678, 06 12 34 56 78, 06.12.34.56.78 or +33 6 12 34 56 78.
func FrenchPhoneValidation(fl validator.FieldLevel) bool {
	return IsFrenchPhone(fl.Field().String())
}

// IsFrenchPhone reports whether phone is a valid French phone number.
func IsFrenchPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.Replace(phone, "+33 ", "+33", 1)
	return frenchPhonePattern.MatchString(phone)
}

// SiretValidation checks a 14 digit SIRET number with its Luhn checksum.
func SiretValidation(fl validator.FieldLevel) bool {
	return IsSiret(fl.Field().String())
}

// IsSiret reports whether siret is 14 digits with a valid Luhn checksum.
// Spaces are ignored.
func IsSiret(siret string) bool {
	siret = strings.ReplaceAll(siret, " ", "")
	if len(siret) != 14 {
		return false
	}

	sum := 0
	for i, r := range siret {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum%10 == 0
}
