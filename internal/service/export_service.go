package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/models"
)

const (
	submissionsSheet = "Submissions"
	summarySheet     = "Summary"
	timestampLayout  = "2006-01-02 15:04:05"
)

var (
	submissionHeaders = []interface{}{"Candidate Name", "Email", "Score (%)", "Status", "Time Spent (minutes)", "Completed At", "Violations"}
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Export is a generated spreadsheet.
type Export struct {
	Filename string
	Content  []byte
}

// ExportService turns assessment submissions into an .xlsx workbook.
type ExportService interface {
	Submissions(ctx context.Context, req dto.ExportSubmissionsRequest) (Export, error)
}

type exportService struct {
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewExportService builds the export service.
func NewExportService(validate *validator.Validate, logger zerolog.Logger) ExportService {
	return &exportService{
		validator: validate,
		logger:    logger.With().Str("component", "export_service").Logger(),
		now:       time.Now,
	}
}

func (s *exportService) Submissions(_ context.Context, req dto.ExportSubmissionsRequest) (Export, error) {
	if err := s.validator.Struct(req); err != nil {
		return Export{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", submissionsSheet); err != nil {
		return Export{}, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return Export{}, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return Export{}, err
	}

	if err := s.writeSubmissions(f, headerStyle, req.Submissions); err != nil {
		return Export{}, fmt.Errorf("failed to create submissions sheet: %w", err)
	}
	if err := s.writeSummary(f, req); err != nil {
		return Export{}, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Export{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	title := req.Assessment.String("title", "assessment")
	filename := fmt.Sprintf("%s_submissions_%s.xlsx", whitespaceRun.ReplaceAllString(title, "_"), s.now().Format("2006-01-02"))

	s.logger.Info().Int("submissions", len(req.Submissions)).Str("filename", filename).Msg("submissions exported")
	return Export{Filename: filename, Content: buf.Bytes()}, nil
}

func (s *exportService) writeSubmissions(f *excelize.File, headerStyle int, submissions []models.Record) error {
	if err := f.SetSheetRow(submissionsSheet, "A1", &submissionHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(submissionsSheet, "A1", "G1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(submissionsSheet, "A", "B", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(submissionsSheet, "C", "G", 18); err != nil {
		return err
	}

	for i, sub := range submissions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := SubmissionRow(sub)
		if err := f.SetSheetRow(submissionsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeSummary(f *excelize.File, req dto.ExportSubmissionsRequest) error {
	passed := 0
	total := 0.0
	for _, sub := range req.Submissions {
		if sub.Bool("passed") {
			passed++
		}
		total += sub.Float("score", 0)
	}

	rows := [][]interface{}{
		{"Assessment", req.Assessment.String("title", "N/A")},
		{"Job Role", req.Assessment.String("jobRole", "N/A")},
		{"Generated", s.now().UTC().Format(timestampLayout)},
		{"Total Submissions", len(req.Submissions)},
		{"Passed", passed},
		{"Average Score (%)", roundTenth(total / float64(len(req.Submissions)))},
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 40); err != nil {
		return err
	}
	for i := range rows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// SubmissionRow renders one submission in the column order of the export.
func SubmissionRow(sub models.Record) []interface{} {
	candidate := nestedRecord(sub, "candidate")

	status := "Failed"
	if sub.Bool("passed") {
		status = "Passed"
	}

	return []interface{}{
		firstString("Unknown Candidate", sub.String("candidateName", ""), sub.String("name", ""), candidate.String("name", "")),
		firstString("No email provided", sub.String("candidateEmail", ""), sub.String("email", ""), candidate.String("email", "")),
		sub.Value("score", 0),
		status,
		sub.Value("timeSpent", "N/A"),
		completedAt(sub),
		sub.Value("violations", 0),
	}
}

// completedAt accepts an RFC 3339 string or a {"seconds": n} timestamp object.
func completedAt(sub models.Record) string {
	switch value := sub.Value("completedAt", nil).(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed.UTC().Format(timestampLayout)
		}
		if value != "" {
			return value
		}
	case map[string]interface{}:
		if seconds := models.Record(value).Float("seconds", 0); seconds > 0 {
			return time.Unix(int64(seconds), 0).UTC().Format(timestampLayout)
		}
	}
	return "N/A"
}

func nestedRecord(r models.Record, key string) models.Record {
	if nested, ok := r.Value(key, nil).(map[string]interface{}); ok {
		return models.Record(nested)
	}
	return models.Record{}
}

func firstString(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
