package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

func TestCreateFamily(t *testing.T) {
	a, orm := newTestAPI(t)
	router := a.Routes()
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	token := tokenFor(t, a, user)

	rec := doRequest(t, router, http.MethodPost, "/api/Families", token, map[string]any{
		"title":     "Lovelace",
		"membersId": []uuid.UUID{user.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	created := decodeBody[familyByIDResponse](t, rec)
	assert.Equal(t, "Lovelace", created.Title)
	require.Len(t, created.Members, 1)
	assert.Equal(t, user.Email, created.Members[0].Email)
	assert.Equal(t, models.MemberOther, created.Members[0].Type)
}

func TestCreateFamilyDuplicateName(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	createFamily(t, orm, "Lovelace")

	rec := doRequest(t, a.Routes(), http.MethodPost, "/api/Families", tokenFor(t, a, user), map[string]any{
		"title": "Lovelace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFamilyMissingTitle(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)

	rec := doRequest(t, a.Routes(), http.MethodPost, "/api/Families", tokenFor(t, a, user), map[string]any{
		"title": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFamiliesEmpty(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Families", tokenFor(t, a, user), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFamilies(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	createFamily(t, orm, "Babbage")
	createFamily(t, orm, "Lovelace")

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Families", tokenFor(t, a, user), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	families := decodeBody[[]familyResponse](t, rec)
	require.Len(t, families, 2)
	assert.Equal(t, "Babbage", families[0].Title)
	assert.Equal(t, "Lovelace", families[1].Title)
}

func TestGetFamilyNotFound(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Families/"+uuid.NewString(), tokenFor(t, a, user), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFamilyWithMembers(t *testing.T) {
	a, orm := newTestAPI(t)
	user := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	family := createFamily(t, orm, "Lovelace")
	addMember(t, orm, family.ID, user.ID, models.MemberParent)

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Families/"+family.ID.String(), tokenFor(t, a, user), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[familyByIDResponse](t, rec)
	assert.Equal(t, family.ID, got.ID)
	require.Len(t, got.Members, 1)
	assert.Equal(t, models.MemberParent, got.Members[0].Type)
}

func TestUpdateFamilyReplacesMembers(t *testing.T) {
	a, orm := newTestAPI(t)
	router := a.Routes()
	owner := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	other := createUser(t, a, orm, "other@example.com", models.RoleOwner)
	family := createFamily(t, orm, "Lovelace")
	addMember(t, orm, family.ID, owner.ID, models.MemberParent)

	rec := doRequest(t, router, http.MethodPut, "/api/Families/"+family.ID.String(), tokenFor(t, a, owner), map[string]any{
		"title":     "Byron",
		"membersId": []uuid.UUID{other.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[familyByIDResponse](t, rec)
	assert.Equal(t, "Byron", got.Title)
	require.Len(t, got.Members, 1)
	assert.Equal(t, other.Email, got.Members[0].Email)
}

func TestUpdateFamilyRequiresMembers(t *testing.T) {
	a, orm := newTestAPI(t)
	owner := createUser(t, a, orm, "owner@example.com", models.RoleOwner)
	family := createFamily(t, orm, "Lovelace")
	addMember(t, orm, family.ID, owner.ID, models.MemberParent)

	rec := doRequest(t, a.Routes(), http.MethodPut, "/api/Families/"+family.ID.String(), tokenFor(t, a, owner), map[string]any{
		"title":     "Byron",
		"membersId": []uuid.UUID{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFamilyRoutesRequireAuth(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doRequest(t, a.Routes(), http.MethodGet, "/api/Families", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
