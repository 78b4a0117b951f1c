package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ScheduleType represents how often a meeting takes place
type ScheduleType string

const (
	ScheduleTypeOneTime   ScheduleType = "one-time"
	ScheduleTypeRecurring ScheduleType = "recurring"
)

// IsValid checks if the schedule type is supported
func (t ScheduleType) IsValid() bool {
	switch t {
	case ScheduleTypeOneTime, ScheduleTypeRecurring:
		return true
	}
	return false
}

// IsRecurring checks if the schedule type repeats
func (t ScheduleType) IsRecurring() bool {
	return t == ScheduleTypeRecurring
}

// DefaultTimezone is stored when the client does not name a timezone.
const DefaultTimezone = "UTC"

// Meeting is the root of the meeting graph. It is immutable once created.
type Meeting struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Name      string           `gorm:"type:varchar(255);not null" json:"name"`
	Schedule  *MeetingSchedule `gorm:"foreignKey:MeetingID" json:"schedule,omitempty"`
	CreatedAt time.Time        `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// MeetingSchedule holds when a meeting happens. Timezone is a free-text label
// and RecurrenceRule is stored verbatim, never expanded.
type MeetingSchedule struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	MeetingID         uint            `gorm:"not null;uniqueIndex" json:"meeting_id"`
	StartsAt          datatypes.Date  `gorm:"not null;index" json:"starts_at"`
	StartTime         datatypes.Time  `gorm:"not null" json:"start_time"`
	EndTime           datatypes.Time  `gorm:"not null" json:"end_time"`
	Timezone          string          `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	ScheduleType      ScheduleType    `gorm:"type:varchar(20);not null" json:"schedule_type"`
	RecurrenceRule    *string         `gorm:"type:text" json:"recurrence_rule,omitempty"`
	RecurrenceEndDate *datatypes.Date `json:"recurrence_end_date,omitempty"`
}

// TableName specifies the table name for MeetingSchedule
func (MeetingSchedule) TableName() string {
	return "meeting_schedules"
}

// MeetingInvite is the normalized invitee list captured at creation time
type MeetingInvite struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	MeetingID uint                        `gorm:"not null;index" json:"meeting_id"`
	Emails    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"emails"`
	CreatedAt time.Time                   `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingInvite
func (MeetingInvite) TableName() string {
	return "meeting_invites"
}

// MeetingGraph is everything written by a single meeting creation
type MeetingGraph struct {
	Meeting   *Meeting
	Schedule  *MeetingSchedule
	Invite    *MeetingInvite
	Responses []*MeetingInviteeResponse
}
