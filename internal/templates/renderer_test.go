package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 4, 15, 7, 0, 0, time.UTC)
}

func TestInvitationDefaults(t *testing.T) {
	msg, err := NewRenderer(true).Invitation(models.Record{})
	require.NoError(t, err)

	require.Equal(t, "Assessment Invitation: New Assessment", msg.Subject)
	require.Contains(t, msg.Plain, "• Description: No description provided")
	require.Contains(t, msg.Plain, "• Time Limit: 30 minutes")
	require.Contains(t, msg.Plain, "• Job Role: Not specified")
	require.Contains(t, msg.Plain, "• Difficulty: Medium")
	require.Contains(t, msg.HTML, "<h1>Assessment Notification</h1>")
	require.Contains(t, msg.HTML, "<h3>New Assessment</h3>")
}

func TestInvitationUsesAssessmentFields(t *testing.T) {
	msg, err := NewRenderer(true).Invitation(models.Record{
		"title":       "Go Backend",
		"description": "APIs and concurrency",
		"timeLimit":   float64(45),
		"jobRole":     "Backend Engineer",
		"difficulty":  "advanced",
	})
	require.NoError(t, err)

	require.Equal(t, "Assessment Invitation: Go Backend", msg.Subject)
	require.Contains(t, msg.Plain, "You have been invited to take the assessment: Go Backend")
	require.Contains(t, msg.Plain, "• Time Limit: 45 minutes")
	require.Contains(t, msg.HTML, "<p><strong>Job Role:</strong> Backend Engineer</p>")
}

func TestCompletionIncludesTimestampAndDuration(t *testing.T) {
	renderer := NewRenderer(true, WithClock(fixedClock))

	msg, err := renderer.Completion(models.Record{"title": "Go Backend"}, "")
	require.NoError(t, err)
	require.Equal(t, "Assessment Completed: Go Backend", msg.Subject)
	require.Contains(t, msg.Plain, "• Completed on: March 04, 2026 at 03:07 PM")
	require.Contains(t, msg.Plain, "• Duration: Not specified")
	require.Contains(t, msg.HTML, "Assessment Platform &copy; 2026")

	msg, err = renderer.Completion(models.Record{}, "25 minutes")
	require.NoError(t, err)
	require.Equal(t, "Assessment Completed: Assessment", msg.Subject)
	require.Contains(t, msg.HTML, "<p><strong>Duration:</strong> 25 minutes</p>")
}

func TestResultBranchesOnPassed(t *testing.T) {
	renderer := NewRenderer(true)
	assessment := models.Record{"title": "Go Backend"}
	candidate := models.Record{"name": "Ada", "email": "ada@example.com"}

	passed, err := renderer.Result(assessment, models.Record{"score": float64(90), "timeSpent": float64(20), "passed": true}, candidate)
	require.NoError(t, err)
	require.Equal(t, "Assessment Results: Go Backend", passed.Subject)
	require.Contains(t, passed.Plain, "Dear Ada,")
	require.Contains(t, passed.Plain, "Congratulations! You have successfully passed the assessment: Go Backend")
	require.Contains(t, passed.Plain, "• Score: 90%")
	require.Contains(t, passed.Plain, "• Status: PASSED ✓")
	require.Contains(t, passed.HTML, "<h1>Assessment Results</h1>")

	failed, err := renderer.Result(assessment, models.Record{"score": float64(40), "passed": false}, models.Record{})
	require.NoError(t, err)
	require.Contains(t, failed.Plain, "Dear Candidate,")
	require.Contains(t, failed.Plain, "• Time Spent: N/A minutes")
	require.Contains(t, failed.Plain, "• Status: Not Passed")
	require.NotContains(t, failed.Plain, "PASSED")
}

func TestHTMLFieldsAreSanitized(t *testing.T) {
	candidate := models.Record{"name": `<script>alert("x")</script>Eve & Co`}
	assessment := models.Record{"title": `<img src=x onerror=alert(1)>Quiz`}

	msg, err := NewRenderer(true).Result(assessment, models.Record{"passed": true}, candidate)
	require.NoError(t, err)

	require.NotContains(t, msg.HTML, "<script>")
	require.NotContains(t, msg.HTML, "onerror")
	require.Contains(t, msg.HTML, "Eve &amp; Co")
	require.Contains(t, msg.HTML, "<strong>Quiz</strong>")
	require.Contains(t, msg.Plain, `<script>alert("x")</script>Eve & Co`, "plain text keeps the raw value")
}

func TestLegacyModeKeepsMarkup(t *testing.T) {
	candidate := models.Record{"name": "<b>Eve</b>"}

	msg, err := NewRenderer(false).Result(models.Record{}, models.Record{}, candidate)
	require.NoError(t, err)
	require.Contains(t, msg.HTML, "<p>Dear <b>Eve</b>,</p>")
}
