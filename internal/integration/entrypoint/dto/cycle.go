package dto

import (
	"time"

	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// CreateCycleRequest represents the request body for opening a cycle.
type CreateCycleRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// CycleResponse represents a single cycle in API responses.
type CycleResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	Status           string     `json:"status"`
	TotalShares      int        `json:"total_shares"`
	TotalSavings     string     `json:"total_savings"`
	DividendPerShare *string    `json:"dividend_per_share,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CycleListResponse represents the response for listing cycles.
type CycleListResponse struct {
	Cycles []CycleResponse `json:"cycles"`
}

// CloseCycleResponse represents the response for closing a cycle.
type CloseCycleResponse struct {
	Cycle      CycleResponse `json:"cycle"`
	ZeroShares bool          `json:"zero_shares"`
}

// ShareOutRowResponse represents one member's line in a share-out preview.
type ShareOutRowResponse struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Shares     int    `json:"shares"`
	Dividend   string `json:"dividend"`
}

// ShareOutResponse represents the response for a cycle share-out preview.
type ShareOutResponse struct {
	Cycle         CycleResponse         `json:"cycle"`
	Rows          []ShareOutRowResponse `json:"rows"`
	TotalDividend string                `json:"total_dividend"`
}

// ToCycleResponse converts a domain Cycle entity to a CycleResponse DTO.
func ToCycleResponse(c *entity.Cycle) CycleResponse {
	response := CycleResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		StartDate:    c.StartDate.Format(dateLayout),
		EndDate:      c.EndDate.Format(dateLayout),
		Status:       string(c.Status),
		TotalShares:  c.TotalShares,
		TotalSavings: c.TotalSavings.String(),
		ClosedAt:     c.ClosedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.DividendPerShare != nil {
		dps := c.DividendPerShare.String()
		response.DividendPerShare = &dps
	}

	return response
}

// ToCycleListResponse converts a list of Cycle entities to a CycleListResponse.
func ToCycleListResponse(cycles []*entity.Cycle) CycleListResponse {
	responses := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		responses[i] = ToCycleResponse(c)
	}
	return CycleListResponse{
		Cycles: responses,
	}
}

// ToShareOutResponse converts a share-out preview to a ShareOutResponse DTO.
func ToShareOutResponse(cycle *entity.Cycle, rows []valueobject.ShareOutRow, total string) ShareOutResponse {
	rowResponses := make([]ShareOutRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = ShareOutRowResponse{
			MemberID:   row.MemberID,
			MemberName: row.MemberName,
			Shares:     row.Shares,
			Dividend:   row.Dividend.String(),
		}
	}
	return ShareOutResponse{
		Cycle:         ToCycleResponse(cycle),
		Rows:          rowResponses,
		TotalDividend: total,
	}
}
