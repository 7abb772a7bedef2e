package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

var (
	errFamilyNotFound = errors.New("family not found")
	errNotMember      = errors.New("caller is not a member of this family")
)

func parseID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// loadFamilyForMember fetches a family and checks the caller belongs to it.
// The returned status is the HTTP code to respond with when err is non-nil.
func (a *API) loadFamilyForMember(ctx context.Context, familyID uuid.UUID, id Identity) (*models.Family, int, error) {
	orm := a.store.ORM.WithContext(ctx)

	var family models.Family
	err := orm.First(&family, "id = ?", familyID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, http.StatusNotFound, errFamilyNotFound
	case err != nil:
		return nil, http.StatusInternalServerError, err
	}

	userID, err := id.UserID()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("user not authenticated")
	}

	var count int64
	if err := orm.Model(&models.FamilyMember{}).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Count(&count).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if count == 0 {
		return nil, http.StatusForbidden, errNotMember
	}

	return &family, 0, nil
}

func (a *API) memberResponses(ctx context.Context, familyID uuid.UUID) ([]familyMemberResponse, error) {
	var members []models.FamilyMember
	if err := a.store.ORM.WithContext(ctx).
		Preload("User").
		Where("family_id = ?", familyID).
		Find(&members).Error; err != nil {
		return nil, err
	}

	out := make([]familyMemberResponse, 0, len(members))
	for _, fm := range members {
		out = append(out, toFamilyMemberResponse(fm, fm.User))
	}
	return out, nil
}

func (a *API) familyByIDResponseFor(ctx context.Context, family models.Family) (familyByIDResponse, error) {
	members, err := a.memberResponses(ctx, family.ID)
	if err != nil {
		return familyByIDResponse{}, err
	}
	return familyByIDResponse{ID: family.ID, Title: family.Name, Members: members}, nil
}

func (a *API) handleCreateFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string      `json:"title"`
		MembersID []uuid.UUID `json:"membersId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, errors.New("family title is required"))
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var count int64
	if err := orm.Model(&models.Family{}).Where("name = ?", req.Title).Count(&count).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		respondError(w, http.StatusBadRequest, errors.New("a family with this name already exists"))
		return
	}

	var users []models.User
	if len(req.MembersID) > 0 {
		if err := orm.Where("id IN ?", req.MembersID).Find(&users).Error; err != nil {
			respondError(w, http.StatusInternalServerError, err)
			return
		}
	}

	family := models.Family{ID: uuid.New(), Name: req.Title}
	err := orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&family).Error; err != nil {
			return err
		}
		for _, u := range users {
			fm := models.FamilyMember{
				ID:       uuid.New(),
				FamilyID: family.ID,
				UserID:   u.ID,
				Type:     models.MemberOther,
			}
			if err := tx.Create(&fm).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	resp, err := a.familyByIDResponseFor(ctx, family)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *API) handleListFamilies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	var families []models.Family
	if err := a.store.ORM.WithContext(ctx).Order("name").Find(&families).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if len(families) == 0 {
		respondError(w, http.StatusNotFound, errors.New("no families found"))
		return
	}

	out := make([]familyResponse, 0, len(families))
	for _, f := range families {
		out = append(out, familyResponse{ID: f.ID, Title: f.Name})
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleGetFamily(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	var family models.Family
	err = a.store.ORM.WithContext(ctx).First(&family, "id = ?", familyID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errFamilyNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	resp, err := a.familyByIDResponseFor(ctx, family)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *API) handleUpdateFamily(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
		return
	}

	var req struct {
		Title     string      `json:"title"`
		MembersID []uuid.UUID `json:"membersId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, errors.New("family title is required"))
		return
	}
	if len(req.MembersID) == 0 {
		respondError(w, http.StatusBadRequest, errors.New("at least one member must be provided"))
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()
	orm := a.store.ORM.WithContext(ctx)

	var family models.Family
	err = orm.First(&family, "id = ?", familyID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errFamilyNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	var users []models.User
	if err := orm.Where("id IN ?", req.MembersID).Find(&users).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if len(users) == 0 {
		respondError(w, http.StatusBadRequest, errors.New("at least one member must be provided"))
		return
	}

	// Replacing the membership set loses relationship types; re-added
	// members start over as Other.
	err = orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Family{}).Where("id = ?", family.ID).Update("name", req.Title).Error; err != nil {
			return err
		}
		if err := tx.Where("family_id = ?", family.ID).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		for _, u := range users {
			fm := models.FamilyMember{
				ID:       uuid.New(),
				FamilyID: family.ID,
				UserID:   u.ID,
				Type:     models.MemberOther,
			}
			if err := tx.Create(&fm).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	family.Name = req.Title
	resp, err := a.familyByIDResponseFor(ctx, family)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
