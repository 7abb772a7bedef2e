package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/SimonaRa20/BudgetManagementSystem/pkg/db"
)

type memberBudgetRow struct {
	MemberID uuid.UUID `db:"member_id"`
	Name     string    `db:"name"`
	Surname  string    `db:"surname"`
	Incomes  float64   `db:"incomes"`
	Expenses float64   `db:"expenses"`
}

type memberBudget struct {
	FamilyMemberID uuid.UUID `json:"familyMemberId"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Incomes        float64   `json:"incomes"`
	Expenses       float64   `json:"expenses"`
	Balance        float64   `json:"balance"`
}

type familyBudgetResponse struct {
	FamilyID uuid.UUID      `json:"familyId"`
	Title    string         `json:"title"`
	Members  []memberBudget `json:"members"`
	Incomes  float64        `json:"incomes"`
	Expenses float64        `json:"expenses"`
	Balance  float64        `json:"balance"`
}

// handleFamilyBudget aggregates income and expense totals per member. The
// aggregation runs as raw SQL on the pool rather than through the ORM.
func (a *API) handleFamilyBudget(w http.ResponseWriter, r *http.Request) {
	familyID, err := parseID(r, "familyID")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid family id"))
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

	if a.store.DB == nil {
		respondError(w, http.StatusInternalServerError, errors.New("reporting store unavailable"))
		return
	}

	const query = `
		SELECT fm.id AS member_id,
		       u.name,
		       u.surname,
		       COALESCE((SELECT SUM(i.amount) FROM incomes i WHERE i.family_member_id = fm.id), 0) AS incomes,
		       COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.family_member_id = fm.id), 0) AS expenses
		FROM family_members fm
		JOIN users u ON u.id = fm.user_id
		WHERE fm.family_id = $1
		ORDER BY u.surname, u.name`

	var rows []memberBudgetRow
	if err := db.Select(ctx, a.store.DB, &rows, query, family.ID); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	resp := familyBudgetResponse{
		FamilyID: family.ID,
		Title:    family.Name,
		Members:  make([]memberBudget, 0, len(rows)),
	}
	for _, row := range rows {
		mb := memberBudget{
			FamilyMemberID: row.MemberID,
			Name:           row.Name,
			Surname:        row.Surname,
			Incomes:        row.Incomes,
			Expenses:       row.Expenses,
			Balance:        row.Incomes - row.Expenses,
		}
		resp.Members = append(resp.Members, mb)
		resp.Incomes += row.Incomes
		resp.Expenses += row.Expenses
	}
	resp.Balance = resp.Incomes - resp.Expenses

	respondJSON(w, http.StatusOK, resp)
}
