package entities

import (
	"strings"
	"time"
)

// Team represents a named group of members
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Member represents a person who can be invited to meetings
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Teams     []Team    `gorm:"many2many:team_members;" json:"teams,omitempty"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}

// NewMember creates a member with a normalized email
func NewMember(fullName, email string) *Member {
	return &Member{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.ToLower(strings.TrimSpace(email)),
	}
}

// TeamNames returns the names of the member's teams in their loaded order
func (m *Member) TeamNames() []string {
	names := make([]string, 0, len(m.Teams))
	for _, t := range m.Teams {
		names = append(names, t.Name)
	}
	return names
}

// TeamMember links a member to a team
type TeamMember struct {
	TeamID   uint `gorm:"primaryKey" json:"team_id"`
	MemberID uint `gorm:"primaryKey" json:"member_id"`
}

// TableName specifies the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
