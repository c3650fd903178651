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

// Service center export files
const (
	OperationCountsFile = "Task1.csv"
	RevenueReportFile   = "Task2.xml"
	WarrantyReportFile  = "Task3.xml"
)

// ServiceCenterController loads the repair records, exports the three reports and prints where they went
type ServiceCenterController struct {
	serviceCenterService services.ServiceCenterService
	loader               DataLoader
	storage              filestorage.FileStorage
	inputDir             string
	category             string
	logger               zerolog.Logger
}

// NewServiceCenterController creates a new ServiceCenterController
func NewServiceCenterController(
	serviceCenterService services.ServiceCenterService,
	loader DataLoader,
	storage filestorage.FileStorage,
	inputDir string,
	category string,
	logger zerolog.Logger,
) *ServiceCenterController {
	return &ServiceCenterController{
		serviceCenterService: serviceCenterService,
		loader:               loader,
		storage:              storage,
		inputDir:             inputDir,
		category:             category,
		logger:               logger,
	}
}

// Run loads the input directory and writes Task1.csv, Task2.xml and Task3.xml
func (c *ServiceCenterController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.loader.LoadFromDir(c.inputDir); err != nil {
		c.logger.Error().Err(err).Str("dir", c.inputDir).Msg("Failed to load service center data")
		return fmt.Errorf("load service center data: %w", err)
	}
	c.logger.Info().Str("dir", c.inputDir).Msg("Service center data loaded")

	con := newConsole(out)

	counts := c.serviceCenterService.OperationCounts()
	info, err := c.storage.SaveFile(OperationCountsFile, filestorage.CSVTable(dto.OperationCountsHeader, operationCountRows(counts)))
	if err != nil {
		return fmt.Errorf("export operation counts: %w", err)
	}
	c.logSaved(info, "Operation counts exported")

	con.println("Task 1:")
	for _, category := range counts {
		for _, op := range category.Operations {
			con.printf("- %s, %s: %d\n", category.Category, op.Operation, op.Count)
		}
	}
	con.printf("Saved to %s\n", info.Path)

	revenue := c.serviceCenterService.OperationRevenue()
	info, err = c.storage.SaveFile(RevenueReportFile, filestorage.XMLDocument(toRevenueReportDocument(revenue)))
	if err != nil {
		return fmt.Errorf("export operation revenue: %w", err)
	}
	c.logSaved(info, "Operation revenue exported")

	con.println()
	con.println("Task 2:")
	for _, category := range revenue {
		for _, op := range category.Operations {
			con.printf("- %s, %s: %s\n", category.Category, op.Operation, op.Sum.String())
		}
	}
	con.printf("Saved to %s\n", info.Path)

	warranty := c.serviceCenterService.WarrantyOperations(c.category)
	info, err = c.storage.SaveFile(WarrantyReportFile, filestorage.XMLDocument(toWarrantyReportDocument(warranty)))
	if err != nil {
		return fmt.Errorf("export warranty operations: %w", err)
	}
	c.logSaved(info, "Warranty operations exported")

	con.println()
	if c.category == "" {
		con.println("Task 3:")
	} else {
		con.printf("Task 3 (%s):\n", c.category)
	}
	for _, op := range warranty {
		con.printf("- %s: %d\n", op.Operation, op.Count)
	}
	con.printf("Saved to %s\n", info.Path)

	return con.Err()
}

func (c *ServiceCenterController) logSaved(info *filestorage.FileInfo, msg string) {
	c.logger.Info().Str("path", info.Path).Int64("size", info.FileSize).Msg(msg)
}

func operationCountRows(counts []services.CategoryOperationCounts) [][]string {
	var rows [][]string
	for _, category := range counts {
		for _, op := range category.Operations {
			rows = append(rows, []string{category.Category, op.Operation, strconv.Itoa(op.Count)})
		}
	}
	return rows
}

func toRevenueReportDocument(revenue []services.CategoryOperationRevenue) dto.RevenueReportDocument {
	doc := dto.RevenueReportDocument{Categories: make([]dto.RevenueCategoryRecord, 0, len(revenue))}
	for _, category := range revenue {
		record := dto.RevenueCategoryRecord{Name: category.Category}
		for _, op := range category.Operations {
			record.Operations = append(record.Operations, dto.OperationSumRecord{Name: op.Operation, Sum: op.Sum.String()})
		}
		doc.Categories = append(doc.Categories, record)
	}
	return doc
}

func toWarrantyReportDocument(ops []services.OperationCount) dto.WarrantyReportDocument {
	doc := dto.WarrantyReportDocument{Operations: make([]dto.OperationCountRecord, 0, len(ops))}
	for _, op := range ops {
		doc.Operations = append(doc.Operations, dto.OperationCountRecord{Name: op.Operation, Count: op.Count})
	}
	return doc
}
