package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

type memberFixture struct {
	user   models.User
	family models.Family
	member models.FamilyMember
	token  string
}

func newMemberFixture(t *testing.T, a *API) memberFixture {
	t.Helper()

	user := createUser(t, a, a.store.ORM, "member@example.com", models.RoleOwner)
	family := createFamily(t, a.store.ORM, "Lovelace")
	member := addMember(t, a.store.ORM, family.ID, user.ID, models.MemberParent)
	return memberFixture{user: user, family: family, member: member, token: tokenFor(t, a, user)}
}

func (f memberFixture) incomesPath() string {
	return "/api/Families/" + f.family.ID.String() + "/Members/" + f.member.ID.String() + "/Incomes"
}

func (f memberFixture) expensesPath() string {
	return "/api/Families/" + f.family.ID.String() + "/Members/" + f.member.ID.String() + "/Expenses"
}

func TestCreateIncome(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)

	rec := doRequest(t, a.Routes(), http.MethodPost, f.incomesPath(), f.token, map[string]any{
		"title":       "Paycheck",
		"category":    models.IncomeSalary,
		"amount":      2500.0,
		"description": "May salary",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[incomeResponse](t, rec)
	assert.Equal(t, "Paycheck", created.Title)
	assert.Equal(t, models.IncomeSalary, created.Category)
	assert.InDelta(t, 2500.0, created.Amount, 0.001)
}

func TestCreateIncomeValidation(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)

	rec := doRequest(t, a.Routes(), http.MethodPost, f.incomesPath(), f.token, map[string]any{
		"title":       " ",
		"category":    42,
		"amount":      0,
		"description": "",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errs := decodeBody[[]string](t, rec)
	assert.ElementsMatch(t, []string{
		"Title is required.",
		"Invalid category.",
		"Amount must be greater than zero.",
		"Description is required.",
		"Time is required.",
	}, errs)
}

func TestIncomeLifecycle(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)
	router := a.Routes()

	rec := doRequest(t, router, http.MethodPost, f.incomesPath(), f.token, map[string]any{
		"title":       "Paycheck",
		"category":    models.IncomeSalary,
		"amount":      2500.0,
		"description": "May salary",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[incomeResponse](t, rec)

	itemPath := f.incomesPath() + "/" + created.ID.String()

	rec = doRequest(t, router, http.MethodGet, itemPath, f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, itemPath, f.token, map[string]any{
		"title":       "Paycheck",
		"category":    models.IncomeBonus,
		"amount":      3000.0,
		"description": "May salary plus bonus",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[incomeResponse](t, rec)
	assert.Equal(t, models.IncomeBonus, updated.Category)
	assert.InDelta(t, 3000.0, updated.Amount, 0.001)

	rec = doRequest(t, router, http.MethodGet, f.incomesPath(), f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]incomeResponse](t, rec), 1)

	rec = doRequest(t, router, http.MethodDelete, itemPath, f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, itemPath, f.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIncomeUnknownMember(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)

	path := "/api/Families/" + f.family.ID.String() + "/Members/" + uuid.NewString() + "/Incomes"
	rec := doRequest(t, a.Routes(), http.MethodGet, path, f.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIncomeForbiddenForOutsider(t *testing.T) {
	a, orm := newTestAPI(t)
	f := newMemberFixture(t, a)
	outsider := createUser(t, a, orm, "outsider@example.com", models.RoleOwner)

	rec := doRequest(t, a.Routes(), http.MethodGet, f.incomesPath(), tokenFor(t, a, outsider), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExpenseLifecycle(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)
	router := a.Routes()

	rec := doRequest(t, router, http.MethodPost, f.expensesPath(), f.token, map[string]any{
		"title":       "Groceries",
		"category":    models.ExpenseGroceries,
		"amount":      120.5,
		"description": "weekly shop",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[expenseResponse](t, rec)
	assert.Equal(t, models.ExpenseGroceries, created.Category)

	itemPath := f.expensesPath() + "/" + created.ID.String()

	rec = doRequest(t, router, http.MethodPut, itemPath, f.token, map[string]any{
		"title":       "Groceries",
		"category":    models.ExpenseGroceries,
		"amount":      99.0,
		"description": "smaller shop",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 99.0, decodeBody[expenseResponse](t, rec).Amount, 0.001)

	rec = doRequest(t, router, http.MethodDelete, itemPath, f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, a.store.ORM.Model(&models.Expense{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateExpenseValidation(t *testing.T) {
	a, _ := newTestAPI(t)
	f := newMemberFixture(t, a)

	rec := doRequest(t, a.Routes(), http.MethodPost, f.expensesPath(), f.token, map[string]any{
		"title":       "Groceries",
		"category":    models.ExpenseGroceries,
		"amount":      -5.0,
		"description": "weekly shop",
		"time":        testTime(t),
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody[[]string](t, rec), "Amount must be greater than zero.")
}
