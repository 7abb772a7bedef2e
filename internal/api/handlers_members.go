package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

var errMemberNotFound = errors.New("member not found in this family")

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if _, status, err := a.loadFamilyForMember(ctx, familyID, id); err != nil {
		respondError(w, status, err)
		return
	}

	members, err := a.memberResponses(ctx, familyID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// handleListUsersNotInFamily lists owner accounts that could still be invited
// into the family.
func (a *API) handleListUsersNotInFamily(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if _, status, err := a.loadFamilyForMember(ctx, familyID, id); err != nil {
		respondError(w, status, err)
		return
	}

	orm := a.store.ORM.WithContext(ctx)
	memberIDs := orm.Model(&models.FamilyMember{}).
		Select("user_id").
		Where("family_id = ?", familyID)

	var users []models.User
	if err := orm.Where("role = ?", models.RoleOwner).
		Where("id NOT IN (?)", memberIDs).
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

func (a *API) handleGetMember(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}
	memberID, err := parseID(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid member id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if _, status, err := a.loadFamilyForMember(ctx, familyID, id); err != nil {
		respondError(w, status, err)
		return
	}

	var member models.FamilyMember
	err = a.store.ORM.WithContext(ctx).
		Preload("User").
		Where("id = ? AND family_id = ?", memberID, familyID).
		First(&member).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errMemberNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, toFamilyMemberResponse(member, member.User))
}

func (a *API) handleAddMember(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}

	var req struct {
		UserID uuid.UUID `json:"userId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	family, status, err := a.loadFamilyForMember(ctx, familyID, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	orm := a.store.ORM.WithContext(ctx)

	var user models.User
	err = orm.First(&user, "id = ?", req.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusBadRequest, errors.New("user not found"))
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	var count int64
	if err := orm.Model(&models.FamilyMember{}).
		Where("family_id = ? AND user_id = ?", familyID, user.ID).
		Count(&count).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		respondValidation(w, []string{"User is already a member of this family."})
		return
	}

	member := models.FamilyMember{
		ID:       uuid.New(),
		FamilyID: family.ID,
		UserID:   user.ID,
		Type:     models.MemberOther,
	}
	if err := orm.Create(&member).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusCreated, toFamilyMemberResponse(member, user))
}

func (a *API) handleUpdateMemberType(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}
	memberID, err := parseID(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid member id"))
		return
	}

	var req struct {
		Type models.MemberType `json:"type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if _, status, err := a.loadFamilyForMember(ctx, familyID, id); err != nil {
		respondError(w, status, err)
		return
	}

	var errs []string
	if !req.Type.Valid() {
		errs = append(errs, "Invalid member type.")
	}

	orm := a.store.ORM.WithContext(ctx)
	var member models.FamilyMember
	err = orm.Preload("User").
		Where("id = ? AND family_id = ?", memberID, familyID).
		First(&member).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		errs = append(errs, "User not found in this family.")
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	if err := orm.Model(&models.FamilyMember{}).
		Where("id = ?", member.ID).
		Update("type", req.Type).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	member.Type = req.Type
	respondJSON(w, http.StatusOK, toFamilyMemberResponse(member, member.User))
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}
	memberID, err := parseID(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid member id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	family, status, err := a.loadFamilyForMember(ctx, familyID, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	orm := a.store.ORM.WithContext(ctx)

	var member models.FamilyMember
	err = orm.Where("id = ? AND family_id = ?", memberID, familyID).First(&member).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errMemberNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	// Removing the last member removes the family as well; an empty family
	// is unreachable through the API.
	err = orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_member_id = ?", member.ID).Delete(&models.Income{}).Error; err != nil {
			return err
		}
		if err := tx.Where("family_member_id = ?", member.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.FamilyMember{}, "id = ?", member.ID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.FamilyMember{}).Where("family_id = ?", family.ID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Delete(&models.Family{}, "id = ?", family.ID).Error
		}
		return nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondMessage(w, http.StatusOK, "Member removed from the family.")
}
