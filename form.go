package onboard

import "strings"

// Role selects the marketplace side a new account joins.
type Role string

const (
	// RoleBuyer is an account purchasing farm produce.
	RoleBuyer Role = "buyer"
	// RoleFarmer is an account selling farm produce.
	RoleFarmer Role = "farmer"
)

// UserType distinguishes individual from business accounts.
type UserType string

const (
	// UserIndividual is a personal account.
	UserIndividual UserType = "individual"
	// UserBusiness is a registered business account.
	UserBusiness UserType = "business"
)

// Field names a single registration form field. Field values double as the
// wire names of the registration payload and as ErrorMap keys.
type Field string

const (
	FieldRole            Field = "role"
	FieldUserType        Field = "user_type"
	FieldTermsAgreed     Field = "terms_agreed"
	FieldFirstName       Field = "first_name"
	FieldLastName        Field = "last_name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
	FieldAddress         Field = "address"
	FieldCity            Field = "city"
	FieldState           Field = "state"
	FieldCountry         Field = "country"
	FieldFarmName        Field = "farm_name"
	FieldFarmSize        Field = "farm_size"
	FieldFarmType        Field = "farm_type"
	FieldYearsFarming    Field = "years_farming"
	FieldBusinessName    Field = "business_name"
	FieldBusinessType    Field = "business_type"
	FieldBusinessRegNum  Field = "business_reg_number"
)

// ErrorMap maps a form field to a human-readable validation message.
type ErrorMap map[Field]string

// RoleSelection is the data collected on the account-type step.
type RoleSelection struct {
	Role        Role
	UserType    UserType
	TermsAgreed bool
}

// BasicInfo is the data collected on the basic-information step.
type BasicInfo struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Username        string
	Password        string
	ConfirmPassword string
	Address         string
	City            string
	State           string
	Country         string
}

// FarmerDetails is the data collected on the role-details step for farmers.
// YearsFarming stays a raw string until submission; it is optional and only
// parsed when non-empty.
type FarmerDetails struct {
	FarmName     string
	FarmSize     string
	FarmType     string
	YearsFarming string
}

// BusinessDetails is the data collected on the role-details step for
// business buyers.
type BusinessDetails struct {
	BusinessName   string
	BusinessType   string
	BusinessRegNum string
}

// RegistrationForm accumulates the per-step records collected across the
// wizard. Which embedded record is required is decided by Role and UserType,
// not by inspecting the strings at submission time.
type RegistrationForm struct {
	RoleSelection
	BasicInfo
	FarmerDetails
	BusinessDetails
}

func newRegistrationForm() RegistrationForm {
	return RegistrationForm{
		BasicInfo: BasicInfo{
			Phone:   phoneCountryCode,
			Country: defaultCountry,
		},
	}
}

// NeedsDetailsStep reports whether the role-details step is part of this
// form's flow: farmers always, buyers only when registering a business.
func (f *RegistrationForm) NeedsDetailsStep() bool {
	return f.Role == RoleFarmer || (f.Role == RoleBuyer && f.UserType == UserBusiness)
}

const (
	phoneCountryCode  = "+234"
	phoneNationalSize = 10
	phoneMaxDigits    = 13 // country code (3) + national number (10)
	defaultCountry    = "Nigeria"
)

// NormalizePhone reduces raw input to the fixed +234-prefixed digit format.
// Non-digits are dropped, a national leading zero is stripped, and anything
// beyond the 13-digit capacity is truncated. Validation of the final length
// stays with the field validator; normalization never rejects.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if !strings.HasPrefix(digits, "234") {
		digits = "234" + strings.TrimPrefix(digits, "0")
	}
	if len(digits) > phoneMaxDigits {
		digits = digits[:phoneMaxDigits]
	}
	return "+" + digits
}

func (f *RegistrationForm) value(field Field) string {
	switch field {
	case FieldFirstName:
		return f.FirstName
	case FieldLastName:
		return f.LastName
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldUsername:
		return f.Username
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	case FieldAddress:
		return f.Address
	case FieldCity:
		return f.City
	case FieldState:
		return f.State
	case FieldCountry:
		return f.Country
	case FieldFarmName:
		return f.FarmName
	case FieldFarmSize:
		return f.FarmSize
	case FieldFarmType:
		return f.FarmType
	case FieldYearsFarming:
		return f.YearsFarming
	case FieldBusinessName:
		return f.BusinessName
	case FieldBusinessType:
		return f.BusinessType
	case FieldBusinessRegNum:
		return f.BusinessRegNum
	default:
		return ""
	}
}

func (f *RegistrationForm) setValue(field Field, value string) {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = NormalizePhone(value)
	case FieldUsername:
		f.Username = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	case FieldAddress:
		f.Address = value
	case FieldCity:
		f.City = value
	case FieldState:
		f.State = value
	case FieldCountry:
		f.Country = value
	case FieldFarmName:
		f.FarmName = value
	case FieldFarmSize:
		f.FarmSize = value
	case FieldFarmType:
		f.FarmType = value
	case FieldYearsFarming:
		f.YearsFarming = value
	case FieldBusinessName:
		f.BusinessName = value
	case FieldBusinessType:
		f.BusinessType = value
	case FieldBusinessRegNum:
		f.BusinessRegNum = value
	}
}

// clearFarmerFields resets farmer-only data. Called when the role changes so
// a form that flipped from farmer to buyer never submits stale farm values.
func (f *RegistrationForm) clearFarmerFields() {
	f.FarmerDetails = FarmerDetails{}
}

func (f *RegistrationForm) clearBusinessFields() {
	f.BusinessDetails = BusinessDetails{}
}
