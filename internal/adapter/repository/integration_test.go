package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
)

// openTestDB connects to TEST_DATABASE_DSN and applies the schema
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	_, err = database.Migrate(db, migrate.Up)
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.CloseDB(db) })
	return db
}

func testGraph(name string, tokens ...string) *entities.MeetingGraph {
	graph := &entities.MeetingGraph{
		Meeting: &entities.Meeting{Name: name},
		Schedule: &entities.MeetingSchedule{
			StartsAt:     datatypes.Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
			StartTime:    datatypes.NewTime(9, 0, 0, 0),
			EndTime:      datatypes.NewTime(10, 0, 0, 0),
			Timezone:     entities.DefaultTimezone,
			ScheduleType: entities.ScheduleTypeOneTime,
		},
	}
	if len(tokens) == 0 {
		return graph
	}

	emails := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		email := uuid.NewString() + "@example.com"
		emails = append(emails, email)
		graph.Responses = append(graph.Responses, entities.NewMeetingInviteeResponse(email, tok))
	}
	graph.Invite = &entities.MeetingInvite{Emails: datatypes.JSONSlice[string](emails)}
	return graph
}

func countMeetings(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entities.Meeting{}).Where("name = ?", name).Count(&n).Error)
	return n
}

func TestCreateGraphRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)
	name := "rollback-" + uuid.NewString()
	token := uuid.NewString()

	// the second slot reuses the first token, so the last insert fails
	err := repo.CreateGraph(context.Background(), testGraph(name, token, token))

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrDuplicate)
	assert.Zero(t, countMeetings(t, db, name), "the meeting row is rolled back")

	var slots int64
	require.NoError(t, db.Model(&entities.MeetingInviteeResponse{}).Where("response_token = ?", token).Count(&slots).Error)
	assert.Zero(t, slots)
}

func TestRecordByToken(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	meetings := NewMeetingRepository(db)
	responses := NewInviteeResponseRepository(db)

	token := uuid.NewString()
	graph := testGraph("respond-"+uuid.NewString(), token)
	require.NoError(t, meetings.CreateGraph(ctx, graph))
	t.Cleanup(func() { db.Delete(&entities.Meeting{}, graph.Meeting.ID) })

	t.Run("unknown token changes nothing", func(t *testing.T) {
		_, err := responses.RecordByToken(ctx, "missing-"+uuid.NewString(), entities.ResponseStatusDecline, time.Now())
		assert.ErrorIs(t, err, entities.ErrTokenNotFound)

		var stored entities.MeetingInviteeResponse
		require.NoError(t, db.Where("response_token = ?", token).First(&stored).Error)
		assert.Nil(t, stored.Status)
	})

	t.Run("returns the updated slot", func(t *testing.T) {
		resp, err := responses.RecordByToken(ctx, token, entities.ResponseStatusAccept, time.Now())
		require.NoError(t, err)

		assert.Equal(t, graph.Meeting.ID, resp.MeetingID)
		assert.Equal(t, graph.Responses[0].InviteeEmail, resp.InviteeEmail)
		assert.Equal(t, entities.ResponseStatusAccept, resp.EffectiveStatus())
	})

	t.Run("answering again overwrites", func(t *testing.T) {
		resp, err := responses.RecordByToken(ctx, token, entities.ResponseStatusTentative, time.Now())
		require.NoError(t, err)
		assert.Equal(t, entities.ResponseStatusTentative, resp.EffectiveStatus())
	})
}

func TestListWithSchedulesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMeetingRepository(db)

	early := testGraph("early-" + uuid.NewString())
	late := testGraph("late-" + uuid.NewString())
	late.Schedule.StartsAt = datatypes.Date(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateGraph(ctx, early))
	require.NoError(t, repo.CreateGraph(ctx, late))
	t.Cleanup(func() { db.Delete(&entities.Meeting{}, []uint{early.Meeting.ID, late.Meeting.ID}) })

	meetings, err := repo.ListWithSchedules(ctx)
	require.NoError(t, err)

	pos := map[uint]int{}
	for i, m := range meetings {
		pos[m.ID] = i
		require.NotNil(t, m.Schedule)
	}
	require.Contains(t, pos, early.Meeting.ID)
	require.Contains(t, pos, late.Meeting.ID)
	assert.Less(t, pos[late.Meeting.ID], pos[early.Meeting.ID])
}
