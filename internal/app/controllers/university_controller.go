package controllers

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/yigit/classworks/internal/app/models/dto"
	"github.com/yigit/classworks/internal/app/services"
	"github.com/yigit/classworks/internal/pkg/filestorage"
)

// GradeReportFile is the university export
const GradeReportFile = "Task1.xml"

// UniversityController loads grades, exports the group report and prints it
type UniversityController struct {
	universityService services.UniversityService
	loader            DataLoader
	storage           filestorage.FileStorage
	inputDir          string
	logger            zerolog.Logger
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(
	universityService services.UniversityService,
	loader DataLoader,
	storage filestorage.FileStorage,
	inputDir string,
	logger zerolog.Logger,
) *UniversityController {
	return &UniversityController{
		universityService: universityService,
		loader:            loader,
		storage:           storage,
		inputDir:          inputDir,
		logger:            logger,
	}
}

// Run loads the input directory, writes the grade report to Task1.xml and prints it
func (c *UniversityController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.loader.LoadFromDir(c.inputDir); err != nil {
		c.logger.Error().Err(err).Str("dir", c.inputDir).Msg("Failed to load university data")
		return fmt.Errorf("load university data: %w", err)
	}

	report := c.universityService.GroupReport()
	c.logger.Info().Int("groups", len(report)).Msg("Grade report computed")

	info, err := c.storage.SaveFile(GradeReportFile, filestorage.XMLDocument(toUniversityDocument(report)))
	if err != nil {
		return fmt.Errorf("export grade report: %w", err)
	}
	c.logger.Info().Str("path", info.Path).Int64("size", info.FileSize).Msg("Grade report exported")

	con := newConsole(out)
	for _, group := range report {
		con.printf("Group %s:\n", group.Group)
		for _, s := range group.Students {
			con.printf("  %s\n", s.Student.ShortName())
			for _, r := range s.Results {
				con.printf("    #%d %s: %s\n", r.TaskID, r.Subject, formatMark(r.Mark))
			}
		}
	}
	con.printf("Saved to %s\n", info.Path)

	return con.Err()
}

// formatMark drops trailing zeros, 9.50 prints as 9.5 and 10.0 as 10
func formatMark(mark float64) string {
	return strconv.FormatFloat(mark, 'f', -1, 64)
}

func toUniversityDocument(report []services.GroupGrades) dto.UniversityDocument {
	doc := dto.UniversityDocument{Groups: make([]dto.GroupRecord, 0, len(report))}
	for _, group := range report {
		groupRecord := dto.GroupRecord{Name: group.Group}
		for _, s := range group.Students {
			studentRecord := dto.StudentResultsRecord{Name: s.Student.ShortName()}
			for _, r := range s.Results {
				studentRecord.Results = append(studentRecord.Results, dto.GradedTaskRecord{
					TaskID:  r.TaskID,
					Subject: r.Subject,
					Mark:    formatMark(r.Mark),
				})
			}
			groupRecord.Students = append(groupRecord.Students, studentRecord)
		}
		doc.Groups = append(doc.Groups, groupRecord)
	}
	return doc
}
