package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

// Response shapes mirror the client contract; field casing is part of the
// wire format.

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

type loginResponse struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"userName"`
	Role         string    `json:"role"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
}

type familyResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type familyByIDResponse struct {
	ID      uuid.UUID              `json:"id"`
	Title   string                 `json:"title"`
	Members []familyMemberResponse `json:"members"`
}

type familyMemberResponse struct {
	FamilyMemberID uuid.UUID         `json:"familyMemberId"`
	FamilyID       uuid.UUID         `json:"familyId"`
	Name           string            `json:"name"`
	Surname        string            `json:"surname"`
	UserName       string            `json:"userName"`
	Email          string            `json:"email"`
	Type           models.MemberType `json:"type"`
}

func toFamilyMemberResponse(fm models.FamilyMember, u models.User) familyMemberResponse {
	return familyMemberResponse{
		FamilyMemberID: fm.ID,
		FamilyID:       fm.FamilyID,
		Name:           u.Name,
		Surname:        u.Surname,
		UserName:       u.UserName,
		Email:          u.Email,
		Type:           fm.Type,
	}
}

type incomeResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Category    models.IncomeCategory `json:"category"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description"`
	Time        time.Time             `json:"time"`
}

func toIncomeResponse(i models.Income) incomeResponse {
	return incomeResponse{
		ID:          i.ID,
		Title:       i.Title,
		Category:    i.Category,
		Amount:      i.Amount,
		Description: i.Description,
		Time:        i.Time,
	}
}

type expenseResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Category    models.ExpenseCategory `json:"category"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Time        time.Time              `json:"time"`
}

func toExpenseResponse(e models.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Time:        e.Time,
	}
}
