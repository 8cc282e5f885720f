package onboard

// Fields checked by the basic-information step, in display order.
var basicInfoFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
	FieldAddress,
	FieldCity,
	FieldState,
}

var farmerFields = []Field{
	FieldFarmName,
	FieldFarmSize,
	FieldFarmType,
}

var businessFields = []Field{
	FieldBusinessName,
	FieldBusinessType,
	FieldBusinessRegNum,
}

// validateStep runs the full gate for one step kind against the form and
// returns whether advancing is blocked together with the complete error map
// for the attempt. The returned map replaces any previous map wholesale; a
// field that was fixed since the last attempt simply does not reappear.
func validateStep(kind StepKind, form *RegistrationForm) (bool, ErrorMap) {
	errs := ErrorMap{}

	switch kind {
	case StepRoleSelect:
		if form.Role == "" {
			errs[FieldRole] = "Please select your role"
		}
		if form.UserType == "" {
			errs[FieldUserType] = "Please select account type"
		}
		if !form.TermsAgreed {
			errs[FieldTermsAgreed] = "You must agree to the terms"
		}

	case StepBasicInfo:
		for _, f := range basicInfoFields {
			for k, msg := range validateField(f, form.value(f), form) {
				errs[k] = msg
			}
		}

	case StepRoleDetails:
		fields := businessFields
		if form.Role == RoleFarmer {
			fields = farmerFields
		}
		for _, f := range fields {
			for k, msg := range validateField(f, form.value(f), form) {
				errs[k] = msg
			}
		}
	}

	return len(errs) > 0, errs
}
