package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// CreateGraph persists the whole meeting graph or nothing
func (r *meetingRepository) CreateGraph(ctx context.Context, graph *entities.MeetingGraph) error {
	if graph == nil || graph.Meeting == nil || graph.Schedule == nil {
		return errors.New("meeting graph requires a meeting and a schedule")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(graph.Meeting).Error; err != nil {
			return err
		}
		meetingID := graph.Meeting.ID

		graph.Schedule.MeetingID = meetingID
		if err := tx.Create(graph.Schedule).Error; err != nil {
			return err
		}

		if graph.Invite != nil {
			graph.Invite.MeetingID = meetingID
			if err := tx.Create(graph.Invite).Error; err != nil {
				return err
			}
		}

		if len(graph.Responses) == 0 {
			return nil
		}
		for _, resp := range graph.Responses {
			resp.MeetingID = meetingID
		}
		return tx.Create(&graph.Responses).Error
	})

	return translateError(err)
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	if !storableID(id) {
		return nil, entities.ErrMeetingNotFound
	}

	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Exists reports whether a meeting with the given ID exists
func (r *meetingRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if !storableID(id) {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWithSchedules retrieves meetings joined with their schedule
func (r *meetingRepository) ListWithSchedules(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		InnerJoins("Schedule").
		Order(`"Schedule"."starts_at" DESC`).
		Order(`"Schedule"."start_time" DESC`).
		Order("meetings.id DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// ListInvites retrieves the invite lists of the given meetings
func (r *meetingRepository) ListInvites(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInvite, error) {
	if len(meetingIDs) == 0 {
		return nil, nil
	}

	var invites []*entities.MeetingInvite
	err := r.db.WithContext(ctx).
		Where("meeting_id IN ?", meetingIDs).
		Order("id ASC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}
