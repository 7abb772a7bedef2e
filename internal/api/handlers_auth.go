package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/auth"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

var (
	errInvalidCredentials  = errors.New("invalid email or password")
	errInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var user models.User
	err := orm.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		loginAttempts.WithLabelValues(resultRejected).Inc()
		respondError(w, http.StatusNotFound, errInvalidCredentials)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		loginAttempts.WithLabelValues(resultRejected).Inc()
		respondError(w, http.StatusNotFound, errInvalidCredentials)
		return
	}

	accessToken, err := a.issuer.AccessToken(user.ID, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	session := models.RefreshSession{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: a.now().Add(a.config.RefreshTokenTTL),
	}

	// At most one live refresh token per account: replace any previous row
	// within the same transaction.
	err = orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshSession{}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	loginAttempts.WithLabelValues(resultOK).Inc()
	a.publishJSON(sessionOpenedTopic, map[string]any{"user_id": user.ID})

	respondJSON(w, http.StatusCreated, loginResponse{
		ID:           user.ID,
		UserName:     user.UserName,
		Role:         string(user.Role),
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Surname  string `json:"surname"`
		UserName string `json:"userName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var errs []string
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs = append(errs, "Invalid email format.")
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "User name is necessary.")
	}
	if strings.TrimSpace(req.Surname) == "" {
		errs = append(errs, "User surname is necessary.")
	}
	if len(req.Password) < 8 {
		errs = append(errs, "Password should be a minimum of 8 characters.")
	}

	var count int64
	if err := orm.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		errs = append(errs, "User with the same email already exists.")
	}

	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Surname:      req.Surname,
		UserName:     req.UserName,
		Email:        req.Email,
		Role:         models.RoleOwner,
		PasswordHash: a.hasher.Hash(req.Password),
	}
	if err := orm.Create(&user).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	registrations.Inc()
	a.publishJSON(userRegisteredTopic, map[string]any{"user_id": user.ID, "email": user.Email})

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (a *API) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var session models.RefreshSession
	err := orm.Where("token = ?", req.RefreshToken).First(&session).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		tokenRefreshes.WithLabelValues(resultRejected).Inc()
		respondError(w, http.StatusUnprocessableEntity, errInvalidRefreshToken)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	// An expired row is refused but left in place; it is only removed by
	// logout or the next successful login.
	if !session.ExpiresAt.After(a.now()) {
		tokenRefreshes.WithLabelValues(resultRejected).Inc()
		respondError(w, http.StatusUnprocessableEntity, errInvalidRefreshToken)
		return
	}

	var user models.User
	if err := orm.First(&user, "id = ?", session.UserID).Error; err != nil {
		tokenRefreshes.WithLabelValues(resultRejected).Inc()
		respondError(w, http.StatusUnprocessableEntity, errInvalidRefreshToken)
		return
	}

	accessToken, err := a.issuer.AccessToken(user.ID, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	tokenRefreshes.WithLabelValues(resultOK).Inc()
	respondJSON(w, http.StatusCreated, map[string]any{"accessToken": accessToken})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		respondError(w, http.StatusBadRequest, errors.New("user not authenticated"))
		return
	}

	userID, err := id.UserID()
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("user not authenticated"))
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	// Deleting an absent row is fine; logout is idempotent.
	if err := a.store.ORM.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshSession{}).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	a.publishJSON(sessionClosedTopic, map[string]any{"user_id": userID})
	respondMessage(w, http.StatusOK, "Logged out successfully.")
}
