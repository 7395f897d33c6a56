package lifecycle

// Type identifies the kind of HR process a lifecycle tracks.
type Type string

const (
	TypeOnboarding  Type = "onboarding"
	TypeOffboarding Type = "offboarding"
	TypeTransfer    Type = "transfer"
	TypePromotion   Type = "promotion"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeOnboarding, TypeOffboarding, TypeTransfer, TypePromotion:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
