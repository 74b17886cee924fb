// internal/app/system/inputval/inputval.go
package inputval

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TagContactEmail is the struct tag that applies IsContactEmail.
const TagContactEmail = "contact_email"

// addrPart is one run of characters that are neither whitespace nor '@'.
// Whitespace follows the browser definition, which also covers \v, the
// no-break and other Unicode spaces, and the byte order mark.
const addrPart = `[^\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+`

var contactEmailRe = regexp.MustCompile(`^` + addrPart + `@` + addrPart + `\.` + addrPart + `$`)

// IsContactEmail reports whether s has the shape local@domain.tld.
// It checks format only; "a@b.c" passes and "foo@bar" does not.
func IsContactEmail(s string) bool {
	return contactEmailRe.MatchString(s)
}

func contactEmail(fl validator.FieldLevel) bool {
	return IsContactEmail(fl.Field().String())
}

// New returns a validator with this app's custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagContactEmail, contactEmail)
	return v
}

// HasTag reports whether err holds a field failure for the given tag.
func HasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
