package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/auth"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

const (
	testSalt     = "test-salt"
	testPassword = "correct horse battery staple"
)

func newTestORM(t *testing.T) *gorm.DB {
	t.Helper()

	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, orm.AutoMigrate(
		&models.User{},
		&models.Family{},
		&models.FamilyMember{},
		&models.Income{},
		&models.Expense{},
		&models.RefreshSession{},
	))
	return orm
}

func newTestAPI(t *testing.T) (*API, *gorm.DB) {
	t.Helper()

	orm := newTestORM(t)

	hasher, err := auth.NewHasher(testSalt)
	require.NoError(t, err)

	issuer, err := auth.NewIssuer("test-signing-key", "budgetd-test", "budgetd-test", time.Hour)
	require.NoError(t, err)

	a, err := New(&Store{ORM: orm}, issuer, hasher, Config{RefreshTokenTTL: time.Hour})
	require.NoError(t, err)
	return a, orm
}

func createUser(t *testing.T, a *API, orm *gorm.DB, email string, role models.Role) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test",
		Surname:      "User",
		UserName:     email,
		Email:        email,
		Role:         role,
		PasswordHash: a.hasher.Hash(testPassword),
	}
	require.NoError(t, orm.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, a *API, user models.User) string {
	t.Helper()

	token, err := a.issuer.AccessToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func addMember(t *testing.T, orm *gorm.DB, familyID, userID uuid.UUID, typ models.MemberType) models.FamilyMember {
	t.Helper()

	fm := models.FamilyMember{ID: uuid.New(), FamilyID: familyID, UserID: userID, Type: typ}
	require.NoError(t, orm.Create(&fm).Error)
	return fm
}

func testTime(t *testing.T) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, "2024-05-01T12:00:00Z")
	require.NoError(t, err)
	return ts
}

func createFamily(t *testing.T, orm *gorm.DB, name string) models.Family {
	t.Helper()

	family := models.Family{ID: uuid.New(), Name: name}
	require.NoError(t, orm.Create(&family).Error)
	return family
}
