package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

var errIncomeNotFound = errors.New("income not found")

// memberInScope resolves the {familyID}/{memberID} pair for income and
// expense routes: the family must exist, the caller must belong to it, and
// the member must belong to the family.
func (a *API) memberInScope(ctx context.Context, r *http.Request, id Identity) (*models.FamilyMember, int, error) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid family id")
	}
	memberID, err := parseID(r, "memberID")
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid member id")
	}

	if _, status, err := a.loadFamilyForMember(ctx, familyID, id); err != nil {
		return nil, status, err
	}

	var member models.FamilyMember
	err = a.store.ORM.WithContext(ctx).
		Where("id = ? AND family_id = ?", memberID, familyID).
		First(&member).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, http.StatusNotFound, errMemberNotFound
	case err != nil:
		return nil, http.StatusInternalServerError, err
	}

	return &member, 0, nil
}

type incomeRequest struct {
	Title       string                `json:"title"`
	Category    models.IncomeCategory `json:"category"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description"`
	Time        time.Time             `json:"time"`
}

func (req incomeRequest) validate() []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "Title is required.")
	}
	if !req.Category.Valid() {
		errs = append(errs, "Invalid category.")
	}
	if req.Amount <= 0 {
		errs = append(errs, "Amount must be greater than zero.")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "Description is required.")
	}
	if req.Time.IsZero() {
		errs = append(errs, "Time is required.")
	}
	return errs
}

func (a *API) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	var incomes []models.Income
	if err := a.store.ORM.WithContext(ctx).
		Where("family_member_id = ?", member.ID).
		Order("time DESC").
		Find(&incomes).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]incomeResponse, 0, len(incomes))
	for _, inc := range incomes {
		out = append(out, toIncomeResponse(inc))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleGetIncome(w http.ResponseWriter, r *http.Request) {
	incomeID, err := parseID(r, "incomeID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid income id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	var income models.Income
	err = a.store.ORM.WithContext(ctx).
		Where("id = ? AND family_member_id = ?", incomeID, member.ID).
		First(&income).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errIncomeNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, toIncomeResponse(income))
}

func (a *API) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	income := models.Income{
		ID:             uuid.New(),
		Title:          req.Title,
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
		Time:           req.Time,
		FamilyMemberID: member.ID,
	}
	if err := a.store.ORM.WithContext(ctx).Create(&income).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	a.publishJSON(incomeCreatedTopic, map[string]any{
		"income_id": income.ID,
		"member_id": member.ID,
		"amount":    income.Amount,
	})
	respondJSON(w, http.StatusCreated, toIncomeResponse(income))
}

func (a *API) handleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	incomeID, err := parseID(r, "incomeID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid income id"))
		return
	}

	var req incomeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	orm := a.store.ORM.WithContext(ctx)

	var income models.Income
	err = orm.Where("id = ? AND family_member_id = ?", incomeID, member.ID).First(&income).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errIncomeNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	income.Title = req.Title
	income.Category = req.Category
	income.Amount = req.Amount
	income.Description = req.Description
	income.Time = req.Time
	if err := orm.Save(&income).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, toIncomeResponse(income))
}

func (a *API) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	incomeID, err := parseID(r, "incomeID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid income id"))
		return
	}

	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	orm := a.store.ORM.WithContext(ctx)

	var income models.Income
	err = orm.Where("id = ? AND family_member_id = ?", incomeID, member.ID).First(&income).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errIncomeNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if err := orm.Delete(&models.Income{}, "id = ?", income.ID).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondMessage(w, http.StatusOK, "Income deleted successfully.")
}
