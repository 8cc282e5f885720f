package onboard

import (
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateField checks a single field against the form snapshot and returns
// an ErrorMap with zero or one entries. It is a pure function: validation
// messages are exactly the ones shown inline in the product UI, and the
// first failing rule wins for multi-rule fields.
func validateField(field Field, value string, form *RegistrationForm) ErrorMap {
	errs := ErrorMap{}

	switch field {
	case FieldFirstName:
		if strings.TrimSpace(value) == "" {
			errs[field] = "First name is required"
		}
	case FieldLastName:
		if strings.TrimSpace(value) == "" {
			errs[field] = "Last name is required"
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			errs[field] = "Email is required"
		} else if !emailShape.MatchString(value) {
			errs[field] = "Invalid email format"
		}
	case FieldPhone:
		if strings.TrimSpace(value) == "" {
			errs[field] = "Phone is required"
		} else if !validPhone(value) {
			errs[field] = "Phone must be +234 followed by 10 digits"
		}
	case FieldUsername:
		if strings.TrimSpace(value) == "" {
			errs[field] = "Username is required"
		}
	case FieldPassword:
		switch {
		case value == "":
			errs[field] = "Password is required"
		case len(value) < 8:
			errs[field] = "Password must be at least 8 characters"
		case !strings.ContainsFunc(value, isUpper):
			errs[field] = "Must contain uppercase letter"
		case !strings.ContainsFunc(value, isLower):
			errs[field] = "Must contain lowercase letter"
		case !strings.ContainsFunc(value, isDigit):
			errs[field] = "Must contain a number"
		}
	case FieldConfirmPassword:
		if value == "" {
			errs[field] = "Please confirm password"
		} else if value != form.Password {
			errs[field] = "Passwords don't match"
		}
	case FieldAddress:
		if strings.TrimSpace(value) == "" {
			errs[field] = "Address is required"
		}
	case FieldCity:
		if strings.TrimSpace(value) == "" {
			errs[field] = "City is required"
		}
	case FieldState:
		if strings.TrimSpace(value) == "" {
			errs[field] = "State is required"
		}
	case FieldFarmName:
		if form.Role == RoleFarmer && strings.TrimSpace(value) == "" {
			errs[field] = "Farm name is required"
		}
	case FieldFarmSize:
		if form.Role == RoleFarmer && strings.TrimSpace(value) == "" {
			errs[field] = "Farm size is required"
		}
	case FieldFarmType:
		if form.Role == RoleFarmer && strings.TrimSpace(value) == "" {
			errs[field] = "Farm type is required"
		}
	case FieldBusinessName:
		if form.Role == RoleBuyer && form.UserType == UserBusiness && strings.TrimSpace(value) == "" {
			errs[field] = "Business name is required"
		}
	case FieldBusinessType:
		if form.Role == RoleBuyer && form.UserType == UserBusiness && strings.TrimSpace(value) == "" {
			errs[field] = "Business type is required"
		}
	case FieldBusinessRegNum:
		if form.Role == RoleBuyer && form.UserType == UserBusiness && strings.TrimSpace(value) == "" {
			errs[field] = "Registration number is required"
		}
	}

	return errs
}

// validPhone reports whether value is the country code followed by exactly
// the national number of digits. Normalization already ran; this only judges
// the final shape.
func validPhone(value string) bool {
	rest, ok := strings.CutPrefix(value, phoneCountryCode)
	if !ok || len(rest) != phoneNationalSize {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
