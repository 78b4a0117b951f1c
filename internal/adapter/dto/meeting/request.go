package meeting

import "github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"

// CreateMeetingRequest represents the request to schedule a meeting. Field
// checks are ordered and done by the meeting service.
type CreateMeetingRequest struct {
	Name              string              `json:"name"`
	StartsAt          string              `json:"startsAt"`
	StartTime         string              `json:"startTime"`
	EndTime           string              `json:"endTime"`
	Timezone          string              `json:"timezone"`
	ScheduleType      string              `json:"scheduleType"`
	RecurrenceRule    *string             `json:"recurrenceRule"`
	RecurrenceEndDate *string             `json:"recurrenceEndDate"`
	InviteeEmail      string              `json:"inviteeEmail"`
	InviteeIDs        []common.FlexibleID `json:"inviteeIds"`
}
