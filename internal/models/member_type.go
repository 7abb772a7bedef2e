package models

// MemberType describes the relationship of a family member to the household.
// Wire values are the original numeric codes and must stay stable.
type MemberType int

const (
	MemberParent MemberType = iota
	MemberChild
	MemberSibling
	MemberGrandparent
	MemberAunt
	MemberUncle
	MemberCousin
	MemberOther
)

// Valid reports whether t is within the known relationship set.
func (t MemberType) Valid() bool {
	return t >= MemberParent && t <= MemberOther
}

func (t MemberType) String() string {
	switch t {
	case MemberParent:
		return "Parent"
	case MemberChild:
		return "Child"
	case MemberSibling:
		return "Sibling"
	case MemberGrandparent:
		return "Grandparent"
	case MemberAunt:
		return "Aunt"
	case MemberUncle:
		return "Uncle"
	case MemberCousin:
		return "Cousin"
	case MemberOther:
		return "Other"
	default:
		return "Unknown"
	}
}
