package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvitation(t *testing.T) {
	templates, err := LoadTemplates()
	require.NoError(t, err)

	inv := testInvitation()
	inv.MeetingName = "Board <Review>"
	inv.ScheduleType = "recurring"
	inv.RecurrenceRule = "FREQ=WEEKLY;BYDAY=MO"
	inv.RecurrenceEndDate = "2026-06-30"

	rendered, err := templates.RenderInvitation(inv)
	require.NoError(t, err)

	assert.Contains(t, rendered.Text, `"Board <Review>"`)
	assert.Contains(t, rendered.Text, "Meeting ID: 42")
	assert.Contains(t, rendered.Text, "Schedule: recurring")
	assert.Contains(t, rendered.Text, "Repeats: FREQ=WEEKLY;BYDAY=MO")
	assert.Contains(t, rendered.Text, "Until: 2026-06-30")
	assert.Contains(t, rendered.HTML, "<strong>Meeting ID:</strong> 42")
	assert.Contains(t, rendered.HTML, "<strong>Until:</strong> 2026-06-30")
	assert.Contains(t, rendered.HTML, "Board &lt;Review&gt;")
	for _, link := range inv.Links {
		assert.Contains(t, rendered.Text, link.Label+": "+link.URL)
		assert.Contains(t, rendered.HTML, link.Label)
	}
}

func TestRenderInvitationWithoutRecurrence(t *testing.T) {
	templates, err := LoadTemplates()
	require.NoError(t, err)

	rendered, err := templates.RenderInvitation(testInvitation())
	require.NoError(t, err)
	assert.NotContains(t, rendered.Text, "Repeats:")
	assert.NotContains(t, rendered.Text, "Until:")
	assert.Contains(t, rendered.Text, "Meeting ID: 42")
	assert.Equal(t, "Meeting Invite: Tumor Board", testInvitation().Subject())
}
