package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// inviteeResponseRepository implements the InviteeResponseRepository interface
type inviteeResponseRepository struct {
	db *gorm.DB
}

// NewInviteeResponseRepository creates a new invitee response repository
func NewInviteeResponseRepository(db *gorm.DB) repositories.InviteeResponseRepository {
	return &inviteeResponseRepository{db: db}
}

// RecordByToken updates the slot in one statement so concurrent answers for
// the same token resolve by row-level atomicity alone.
func (r *inviteeResponseRepository) RecordByToken(ctx context.Context, token string, status entities.ResponseStatus, at time.Time) (*entities.MeetingInviteeResponse, error) {
	var resp entities.MeetingInviteeResponse
	result := r.db.WithContext(ctx).
		Model(&resp).
		Clauses(clause.Returning{}).
		Where("response_token = ?", token).
		Updates(map[string]interface{}{
			"status":       string(status),
			"responded_at": at,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entities.ErrTokenNotFound
	}
	return &resp, nil
}

// ListByMeetings retrieves response slots of the given meetings
func (r *inviteeResponseRepository) ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInviteeResponse, error) {
	if len(meetingIDs) == 0 {
		return nil, nil
	}

	var responses []*entities.MeetingInviteeResponse
	err := r.db.WithContext(ctx).
		Where("meeting_id IN ?", meetingIDs).
		Order("invitee_email ASC").
		Order("id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
