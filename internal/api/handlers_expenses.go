package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

var errExpenseNotFound = errors.New("expense not found")

type expenseRequest struct {
	Title       string                 `json:"title"`
	Category    models.ExpenseCategory `json:"category"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Time        time.Time              `json:"time"`
}

func (req expenseRequest) validate() []string {
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

func (a *API) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	member, status, err := a.memberInScope(ctx, r, id)
	if err != nil {
		respondError(w, status, err)
		return
	}

	var expenses []models.Expense
	if err := a.store.ORM.WithContext(ctx).
		Where("family_member_id = ?", member.ID).
		Order("time DESC").
		Find(&expenses).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]expenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		out = append(out, toExpenseResponse(exp))
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseID(r, "expenseID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid expense id"))
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

	var expense models.Expense
	err = a.store.ORM.WithContext(ctx).
		Where("id = ? AND family_member_id = ?", expenseID, member.ID).
		First(&expense).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errExpenseNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, toExpenseResponse(expense))
}

func (a *API) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
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

	expense := models.Expense{
		ID:             uuid.New(),
		Title:          req.Title,
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
		Time:           req.Time,
		FamilyMemberID: member.ID,
	}
	if err := a.store.ORM.WithContext(ctx).Create(&expense).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	a.publishJSON(expenseCreatedTopic, map[string]any{
		"expense_id": expense.ID,
		"member_id":  member.ID,
		"amount":     expense.Amount,
	})
	respondJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (a *API) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseID(r, "expenseID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid expense id"))
		return
	}

	var req expenseRequest
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

	var expense models.Expense
	err = orm.Where("id = ? AND family_member_id = ?", expenseID, member.ID).First(&expense).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errExpenseNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	expense.Title = req.Title
	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.Time = req.Time
	if err := orm.Save(&expense).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, toExpenseResponse(expense))
}

func (a *API) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseID(r, "expenseID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid expense id"))
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

	var expense models.Expense
	err = orm.Where("id = ? AND family_member_id = ?", expenseID, member.ID).First(&expense).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, errExpenseNotFound)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	if err := orm.Delete(&models.Expense{}, "id = ?", expense.ID).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondMessage(w, http.StatusOK, "Expense deleted successfully.")
}
