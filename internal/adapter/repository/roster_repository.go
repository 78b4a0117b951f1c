package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) repositories.TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team
func (r *teamRepository) Create(ctx context.Context, team *entities.Team) error {
	return translateError(r.db.WithContext(ctx).Create(team).Error)
}

// List retrieves all teams ordered by name
func (r *teamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	var teams []*entities.Team
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &memberRepository{db: db}
}

// CreateWithTeams creates a member and links it to teamIDs
func (r *memberRepository) CreateWithTeams(ctx context.Context, member *entities.Member, teamIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(member).Error; err != nil {
			return err
		}
		if len(teamIDs) == 0 {
			return nil
		}

		links := make([]entities.TeamMember, 0, len(teamIDs))
		for _, teamID := range teamIDs {
			if !storableID(teamID) {
				return missingReference("team", teamID)
			}
			links = append(links, entities.TeamMember{TeamID: teamID, MemberID: member.ID})
		}
		return tx.Create(&links).Error
	})

	return translateError(err)
}

// List retrieves all members with their teams
func (r *memberRepository) List(ctx context.Context) ([]*entities.Member, error) {
	var members []*entities.Member
	err := r.db.WithContext(ctx).
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("teams.name ASC")
		}).
		Order("full_name ASC").
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByIDs retrieves the members with the given IDs
func (r *memberRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	storable := make([]uint, 0, len(ids))
	for _, id := range ids {
		if storableID(id) {
			storable = append(storable, id)
		}
	}
	if len(storable) == 0 {
		return nil, nil
	}

	var members []*entities.Member
	if err := r.db.WithContext(ctx).Where("id IN ?", storable).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
