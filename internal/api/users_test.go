package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

func TestListUsersReturnsOwnersOnly(t *testing.T) {
	a, orm := newTestAPI(t)
	owner := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	createUser(t, a, orm, "admin@example.com", models.RoleAdmin)

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Users", tokenFor(t, a, owner), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeBody[[]userResponse](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, owner.Email, users[0].Email)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	a, orm := newTestAPI(t)
	owner := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	victim := createUser(t, a, orm, "victim@example.com", models.RoleOwner)

	rec := doRequest(t, a.Routes(), http.MethodDelete,
		"/api/Users?userId="+victim.ID.String(), tokenFor(t, a, owner), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUserNotFound(t *testing.T) {
	a, orm := newTestAPI(t)
	admin := createUser(t, a, orm, "admin@example.com", models.RoleAdmin)

	rec := doRequest(t, a.Routes(), http.MethodDelete,
		"/api/Users?userId="+uuid.NewString(), tokenFor(t, a, admin), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserCascades(t *testing.T) {
	a, orm := newTestAPI(t)
	admin := createUser(t, a, orm, "admin@example.com", models.RoleAdmin)
	victim := createUser(t, a, orm, "victim@example.com", models.RoleOwner)
	family := createFamily(t, orm, "Lovelace")
	fm := addMember(t, orm, family.ID, victim.ID, models.MemberParent)

	income := models.Income{ID: uuid.New(), FamilyMemberID: fm.ID, Title: "Paycheck",
		Category: models.IncomeSalary, Amount: 100, Description: "salary", Time: testTime(t)}
	require.NoError(t, orm.Create(&income).Error)
	session := models.RefreshSession{ID: uuid.New(), UserID: victim.ID, Token: "tok", ExpiresAt: testTime(t)}
	require.NoError(t, orm.Create(&session).Error)

	rec := doRequest(t, a.Routes(), http.MethodDelete,
		"/api/Users?userId="+victim.ID.String(), tokenFor(t, a, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, model := range []any{&models.Income{}, &models.FamilyMember{}, &models.RefreshSession{}} {
		var count int64
		require.NoError(t, orm.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	var users int64
	require.NoError(t, orm.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users, "only the admin remains")
}
