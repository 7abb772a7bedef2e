package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncomeCategoryValid(t *testing.T) {
	assert.True(t, IncomeSalary.Valid())
	assert.True(t, IncomeOther.Valid())
	assert.False(t, IncomeCategory(-1).Valid())
	assert.False(t, (IncomeOther + 1).Valid())
}

func TestExpenseCategoryValid(t *testing.T) {
	assert.True(t, ExpenseRent.Valid())
	assert.True(t, ExpenseOther.Valid())
	assert.False(t, ExpenseCategory(-1).Valid())
	assert.False(t, (ExpenseOther + 1).Valid())
}

func TestMemberTypeValid(t *testing.T) {
	assert.True(t, MemberParent.Valid())
	assert.True(t, MemberOther.Valid())
	assert.False(t, MemberType(-1).Valid())
	assert.False(t, (MemberOther + 1).Valid())
}

func TestMemberTypeString(t *testing.T) {
	cases := map[MemberType]string{
		MemberParent:      "Parent",
		MemberChild:       "Child",
		MemberGrandparent: "Grandparent",
		MemberOther:       "Other",
		MemberType(42):    "Unknown",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.String())
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("Guest").Valid())
	assert.False(t, Role("").Valid())
}
