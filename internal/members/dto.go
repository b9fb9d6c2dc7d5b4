package members

import (
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
)

// MemberDTO is the member projection returned by the API. The password hash
// never leaves the service layer.
type MemberDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	YearOfBirth int        `json:"YOB"`
	Gender      bool       `json:"gender"`
	IsAdmin     bool       `json:"isAdmin"`
	GoogleID    *string    `json:"googleId,omitempty"`
	PhotoURL    string     `json:"photoURL,omitempty"`
	IsBlocked   bool       `json:"isBlocked"`
	BlockedAt   *time.Time `json:"blockedAt,omitempty"`
	BlockedBy   *uuid.UUID `json:"blockedBy,omitempty"`
	BlockReason string     `json:"blockReason,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToDTO converts a member row into its API projection.
func ToDTO(m *models.Member) MemberDTO {
	return MemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		YearOfBirth: m.YearOfBirth,
		Gender:      m.Gender,
		IsAdmin:     m.IsAdmin,
		GoogleID:    m.GoogleID,
		PhotoURL:    m.PhotoURL,
		IsBlocked:   m.IsBlocked,
		BlockedAt:   m.BlockedAt,
		BlockedBy:   m.BlockedBy,
		BlockReason: m.BlockReason,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDTOs converts a slice of member rows.
func ToDTOs(rows []models.Member) []MemberDTO {
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToDTO(&rows[i]))
	}
	return out
}

// ListFilter narrows admin member listings.
type ListFilter struct {
	Blocked *bool
	Admin   *bool
	Limit   int
	Offset  int
}

// UpdateProfileRequest carries the self-service profile fields.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	YearOfBirth *int    `json:"YOB" validate:"omitempty,gte=1900,lte=2100"`
	Gender      *bool   `json:"gender"`
	PhotoURL    *string `json:"photoURL" validate:"omitempty,url"`
}

// ChangePasswordRequest carries a password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
}

// BlockRequest carries the moderation payload for blocking a member.
type BlockRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// SetAdminRequest toggles a member's admin flag.
type SetAdminRequest struct {
	IsAdmin bool `json:"isAdmin"`
}
