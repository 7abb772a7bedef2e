package models

// IncomeCategory and ExpenseCategory are closed enumerations carried as
// numeric codes on the wire. The values are part of the stored data and the
// client contract; do not reorder.

type IncomeCategory int

const (
	IncomeSalary IncomeCategory = iota
	IncomeBonus
	IncomeInvestment
	IncomeRental
	IncomeFreelance
	IncomeGift
	IncomePension
	IncomeDailyAllowance
	IncomeOther
)

// Valid reports whether c is a known income category.
func (c IncomeCategory) Valid() bool {
	return c >= IncomeSalary && c <= IncomeOther
}

func (c IncomeCategory) String() string {
	switch c {
	case IncomeSalary:
		return "Salary"
	case IncomeBonus:
		return "Bonus"
	case IncomeInvestment:
		return "Investment"
	case IncomeRental:
		return "Rental"
	case IncomeFreelance:
		return "Freelance"
	case IncomeGift:
		return "Gift"
	case IncomePension:
		return "Pension"
	case IncomeDailyAllowance:
		return "DailyAllowance"
	case IncomeOther:
		return "Other"
	default:
		return ""
	}
}

type ExpenseCategory int

const (
	ExpenseRent ExpenseCategory = iota
	ExpenseGroceries
	ExpenseTransportation
	ExpenseUtilities
	ExpenseEntertainment
	ExpenseDinnerOut
	ExpenseTravel
	ExpenseHealthcare
	ExpenseEducation
	ExpenseSubscription
	ExpenseOther
)

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	return c >= ExpenseRent && c <= ExpenseOther
}

func (c ExpenseCategory) String() string {
	switch c {
	case ExpenseRent:
		return "Rent"
	case ExpenseGroceries:
		return "Groceries"
	case ExpenseTransportation:
		return "Transportation"
	case ExpenseUtilities:
		return "Utilities"
	case ExpenseEntertainment:
		return "Entertainment"
	case ExpenseDinnerOut:
		return "Dinner Out"
	case ExpenseTravel:
		return "Travel"
	case ExpenseHealthcare:
		return "Healthcare"
	case ExpenseEducation:
		return "Education"
	case ExpenseSubscription:
		return "Subscription"
	case ExpenseOther:
		return "Other"
	default:
		return ""
	}
}
