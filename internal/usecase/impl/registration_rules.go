package impl

// contactRequirements says which contact fields the final registration
// step must carry.
type contactRequirements struct {
	EmailRequired bool
	PhoneRequired bool
}

// contactRules is the contact-requiredness decision table: which of
// email and phone are mandatory at step 3 follows from which contact
// channels the deployment has enabled. Kept as a pure function so all
// four flag combinations are independently testable.
//
// When both channels are switched off, email stays required: it is the
// login identifier and an account without one cannot authenticate.
//
// Only the email side is consulted at step 3. The phone side is
// structurally always-on: the wizard collects the phone at step 2 as
// the OTP delivery channel, before the contact step is reached, so no
// step decision ever reads PhoneRequired. The field is kept so the
// table stays total over both channels.
func contactRules(emailEnabled, phoneEnabled bool) contactRequirements {
	req := contactRequirements{
		EmailRequired: emailEnabled,
		PhoneRequired: phoneEnabled,
	}
	if !emailEnabled && !phoneEnabled {
		req.EmailRequired = true
	}

	return req
}
