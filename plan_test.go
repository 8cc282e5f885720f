package onboard

import "testing"

func TestStepPlanFarmer(t *testing.T) {
	form := newRegistrationForm()
	form.Role = RoleFarmer

	plan := stepPlan(&form)
	if len(plan) != 4 {
		t.Fatalf("plan length = %d", len(plan))
	}
	if plan[2].Kind != StepRoleDetails || plan[2].Number != 3 || plan[2].Title != "Farm Details" {
		t.Fatalf("details step = %+v", plan[2])
	}
	if plan[3].Kind != StepVerify || plan[3].Number != 4 {
		t.Fatalf("verify step = %+v", plan[3])
	}
}

func TestStepPlanBusinessBuyer(t *testing.T) {
	form := newRegistrationForm()
	form.Role = RoleBuyer
	form.UserType = UserBusiness

	plan := stepPlan(&form)
	if len(plan) != 4 {
		t.Fatalf("plan length = %d", len(plan))
	}
	if plan[2].Title != "Business Info" {
		t.Fatalf("details title = %q", plan[2].Title)
	}
	if plan[3].Number != 4 {
		t.Fatalf("verify number = %d", plan[3].Number)
	}
}

func TestStepPlanIndividualBuyerKeepsVerifyNumber(t *testing.T) {
	form := newRegistrationForm()
	form.Role = RoleBuyer
	form.UserType = UserIndividual

	plan := stepPlan(&form)
	if len(plan) != 3 {
		t.Fatalf("plan length = %d", len(plan))
	}
	// The details step is absent but the verify step still displays 3;
	// displayed numbers never renumber.
	if plan[2].Kind != StepVerify || plan[2].Number != 3 {
		t.Fatalf("verify step = %+v", plan[2])
	}
}
