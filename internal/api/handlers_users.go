package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	var users []models.User
	if err := a.store.ORM.WithContext(ctx).
		Where("role = ?", models.RoleOwner).
		Order("user_name").
		Find(&users).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	respondJSON(w, http.StatusOK, out)
}

// handleDeleteUser removes an account and everything hanging off it. Admin
// only; routed through requireRole.
func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var user models.User
	err = orm.First(&user, "id = ?", userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errors.New("user not found"))
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	err = orm.Transaction(func(tx *gorm.DB) error {
		memberIDs := tx.Model(&models.FamilyMember{}).
			Select("id").
			Where("user_id = ?", user.ID)
		if err := tx.Where("family_member_id IN (?)", memberIDs).Delete(&models.Income{}).Error; err != nil {
			return err
		}

		memberIDs = tx.Model(&models.FamilyMember{}).
			Select("id").
			Where("user_id = ?", user.ID)
		if err := tx.Where("family_member_id IN (?)", memberIDs).Delete(&models.Expense{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	a.publishJSON(userDeletedTopic, map[string]any{"user_id": user.ID})
	respondMessage(w, http.StatusOK, "User deleted successfully.")
}
