package dto

import (
	"time"

	"github.com/village-banking/backend/internal/domain/entity"
)

// CreateMemberRequest represents the request body for member registration.
type CreateMemberRequest struct {
	Name       string  `json:"name" binding:"required"`
	NationalID string  `json:"national_id" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	JoinDate   *string `json:"join_date,omitempty"`
}

// UpdateMemberRequest represents the request body for a member update. All
// fields are optional; only those present are applied.
type UpdateMemberRequest struct {
	Name       *string `json:"name,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=active suspended left"`
}

// MemberResponse represents a single member in API responses.
type MemberResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	NationalID            string    `json:"national_id"`
	Phone                 string    `json:"phone"`
	Status                string    `json:"status"`
	TotalShares           int       `json:"total_shares"`
	TotalSavings          string    `json:"total_savings"`
	SocialContributions   string    `json:"social_contributions"`
	BirthdayContributions string    `json:"birthday_contributions"`
	JoinDate              string    `json:"join_date"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain Member entity to a MemberResponse DTO.
func ToMemberResponse(m *entity.Member) MemberResponse {
	return MemberResponse{
		ID:                    m.ID.String(),
		Name:                  m.Name,
		NationalID:            m.NationalID,
		Phone:                 m.Phone,
		Status:                string(m.Status),
		TotalShares:           m.TotalShares,
		TotalSavings:          m.TotalSavings.String(),
		SocialContributions:   m.SocialContributions.String(),
		BirthdayContributions: m.BirthdayContributions.String(),
		JoinDate:              m.JoinDate.Format(dateLayout),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ToMemberListResponse converts a list of Member entities to a MemberListResponse.
func ToMemberListResponse(members []*entity.Member) MemberListResponse {
	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = ToMemberResponse(m)
	}
	return MemberListResponse{
		Members: responses,
	}
}
