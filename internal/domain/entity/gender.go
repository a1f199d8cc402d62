package entity

// Gender is the fixed enumeration required before a session can be issued.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every accepted value in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender returns the Gender matching s exactly.
func ParseGender(s string) (Gender, bool) {
	g := Gender(s)

	return g, g.IsValid()
}

// IsValid reports whether g is one of the enumerated values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	return string(g)
}

// ProfileState is the state of the profile completion gate.
type ProfileState string

const (
	// ProfileIncomplete blocks session issuance until gender is set.
	ProfileIncomplete ProfileState = "incomplete"
	// ProfileComplete permits session issuance.
	ProfileComplete ProfileState = "complete"
)
