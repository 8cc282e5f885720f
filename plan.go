package onboard

// StepKind identifies what a wizard step collects, independent of its
// displayed number.
type StepKind uint8

const (
	// StepRoleSelect collects role, account type and terms agreement.
	StepRoleSelect StepKind = iota
	// StepBasicInfo collects identity, credentials and address data.
	StepBasicInfo
	// StepRoleDetails collects farm details or business details depending on
	// the selected role. Absent for individual buyers.
	StepRoleDetails
	// StepVerify collects the emailed verification code.
	StepVerify
)

func (k StepKind) String() string {
	switch k {
	case StepRoleSelect:
		return "role_select"
	case StepBasicInfo:
		return "basic_info"
	case StepRoleDetails:
		return "role_details"
	case StepVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// StepDescriptor describes one entry of the wizard's step plan. Number is the
// step number shown to the user. Numbers are not contiguous across every plan:
// when the role-details step is absent the verify step still displays number 3,
// and with it present verify displays 4. Navigation always goes by plan index,
// never by Number.
type StepDescriptor struct {
	Number int
	Kind   StepKind
	Title  string
}

// stepPlan computes the ordered step list for a form's current role and
// account-type selection.
func stepPlan(form *RegistrationForm) []StepDescriptor {
	plan := []StepDescriptor{
		{Number: 1, Kind: StepRoleSelect, Title: "Account Type"},
		{Number: 2, Kind: StepBasicInfo, Title: "Basic Info"},
	}
	verifyNumber := 3
	if form.NeedsDetailsStep() {
		title := "Business Info"
		if form.Role == RoleFarmer {
			title = "Farm Details"
		}
		plan = append(plan, StepDescriptor{Number: 3, Kind: StepRoleDetails, Title: title})
		verifyNumber = 4
	}
	return append(plan, StepDescriptor{Number: verifyNumber, Kind: StepVerify, Title: "Verify Email"})
}
