// Package templates renders the transactional emails sent to candidates. Every message has a
// plain-text body and an HTML alternative wrapped in a shared layout.
package templates

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

const completedOnLayout = "January 02, 2006 at 03:04 PM"

var (
	layoutTmpl         = template.Must(template.New("layout").Parse(layoutHTML))
	invitationPlainTpl = template.Must(template.New("invitation_plain").Parse(invitationPlain))
	invitationHTMLTpl  = template.Must(template.New("invitation_html").Parse(invitationHTML))
	completionPlainTpl = template.Must(template.New("completion_plain").Parse(completionPlain))
	completionHTMLTpl  = template.Must(template.New("completion_html").Parse(completionHTML))
	passedPlainTpl     = template.Must(template.New("passed_plain").Parse(passedPlain))
	passedHTMLTpl      = template.Must(template.New("passed_html").Parse(passedHTML))
	failedPlainTpl     = template.Must(template.New("failed_plain").Parse(failedPlain))
	failedHTMLTpl      = template.Must(template.New("failed_html").Parse(failedHTML))
)

// Message is a rendered email ready for the transport.
type Message struct {
	Subject string
	Plain   string
	HTML    string
}

// Renderer builds candidate emails from loosely typed records.
type Renderer struct {
	escapeHTML bool
	policy     *bluemonday.Policy
	now        func() time.Time
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for completion timestamps and the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRenderer constructs a renderer. With escapeHTML set, every interpolated field of the HTML
// body is passed through a strict sanitizer; without it, fields are inserted verbatim, which
// allows markup injection through candidate-supplied values.
func NewRenderer(escapeHTML bool, opts ...Option) *Renderer {
	r := &Renderer{
		escapeHTML: escapeHTML,
		policy:     bluemonday.StrictPolicy(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type invitationData struct {
	Title       string
	Description string
	TimeLimit   string
	JobRole     string
	Difficulty  string
}

type completionData struct {
	Title       string
	CompletedOn string
	Duration    string
}

type resultData struct {
	Name      string
	Title     string
	Score     string
	TimeSpent string
}

// Invitation renders the "assigned" email for an assessment.
func (r *Renderer) Invitation(assessment models.Record) (Message, error) {
	data := invitationData{
		Title:       assessment.String("title", "New Assessment"),
		Description: assessment.String("description", "No description provided"),
		TimeLimit:   assessment.String("timeLimit", "30"),
		JobRole:     assessment.String("jobRole", "Not specified"),
		Difficulty:  assessment.String("difficulty", "Medium"),
	}

	htmlData := invitationData{
		Title:       r.field(data.Title),
		Description: r.field(data.Description),
		TimeLimit:   r.field(data.TimeLimit),
		JobRole:     r.field(data.JobRole),
		Difficulty:  r.field(data.Difficulty),
	}

	return r.render("Assessment Invitation: "+data.Title, "Assessment Notification",
		invitationPlainTpl, data, invitationHTMLTpl, htmlData)
}

// Completion renders the "completed" email acknowledging a submission.
func (r *Renderer) Completion(assessment models.Record, duration string) (Message, error) {
	if duration == "" {
		duration = "Not specified"
	}

	data := completionData{
		Title:       assessment.String("title", "Assessment"),
		CompletedOn: r.now().Format(completedOnLayout),
		Duration:    duration,
	}

	htmlData := completionData{
		Title:       r.field(data.Title),
		CompletedOn: data.CompletedOn,
		Duration:    r.field(data.Duration),
	}

	return r.render("Assessment Completed: "+data.Title, "Assessment Notification",
		completionPlainTpl, data, completionHTMLTpl, htmlData)
}

// Result renders the pass or fail results email.
func (r *Renderer) Result(assessment, submission, candidate models.Record) (Message, error) {
	data := resultData{
		Name:      candidate.String("name", "Candidate"),
		Title:     assessment.String("title", "Assessment"),
		Score:     submission.String("score", "0"),
		TimeSpent: submission.String("timeSpent", "N/A"),
	}

	htmlData := resultData{
		Name:      r.field(data.Name),
		Title:     r.field(data.Title),
		Score:     r.field(data.Score),
		TimeSpent: r.field(data.TimeSpent),
	}

	plainTpl, htmlTpl := failedPlainTpl, failedHTMLTpl
	if submission.Bool("passed") {
		plainTpl, htmlTpl = passedPlainTpl, passedHTMLTpl
	}

	return r.render("Assessment Results: "+data.Title, "Assessment Results", plainTpl, data, htmlTpl, htmlData)
}

func (r *Renderer) render(subject, heading string, plainTpl *template.Template, plainData interface{}, htmlTpl *template.Template, htmlData interface{}) (Message, error) {
	plain, err := execute(plainTpl, plainData)
	if err != nil {
		return Message{}, err
	}

	content, err := execute(htmlTpl, htmlData)
	if err != nil {
		return Message{}, err
	}

	page, err := execute(layoutTmpl, map[string]interface{}{
		"Title":   heading,
		"Content": content,
		"Year":    r.now().Year(),
	})
	if err != nil {
		return Message{}, err
	}

	return Message{Subject: subject, Plain: plain, HTML: page}, nil
}

func (r *Renderer) field(value string) string {
	if !r.escapeHTML {
		return value
	}
	return r.policy.Sanitize(value)
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
