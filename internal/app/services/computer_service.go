package services

import (
	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// ComputerService defines the inventory reports
type ComputerService interface {
	All() []models.Computer
	TotalPriceByBrand() []BrandTotal
	ServerDiskSpace() []ServerDisk
	LargestMonitorWorkStations() ([]*models.WorkStation, error)
	GroupByBrand() []BrandGroup
}

// BrandTotal is the summed price of all computers of a brand
type BrandTotal struct {
	Brand string
	Total int
}

// ServerDisk is a server with its total disk space in GB
type ServerDisk struct {
	Server    *models.Server
	DiskSpace int
}

// BrandGroup lists the computers of one brand
type BrandGroup struct {
	Brand     string
	Computers []models.Computer
}

type computerServiceImpl struct {
	repo *repositories.ComputerRepository
}

// NewComputerService creates a new computer service instance
func NewComputerService(repo *repositories.ComputerRepository) ComputerService {
	return &computerServiceImpl{repo: repo}
}

func (s *computerServiceImpl) All() []models.Computer {
	return s.repo.All()
}

// TotalPriceByBrand keeps brands in order of first appearance
func (s *computerServiceImpl) TotalPriceByBrand() []BrandTotal {
	brands, byBrand := groupBy(s.repo.All(), brandOf)

	result := make([]BrandTotal, 0, len(brands))
	for _, brand := range brands {
		total := 0
		for _, c := range byBrand[brand] {
			total += c.Specs().Price
		}
		result = append(result, BrandTotal{Brand: brand, Total: total})
	}
	return result
}

func (s *computerServiceImpl) ServerDiskSpace() []ServerDisk {
	servers := s.repo.Servers()

	result := make([]ServerDisk, 0, len(servers))
	for _, server := range servers {
		result = append(result, ServerDisk{Server: server, DiskSpace: server.TotalDiskSpace()})
	}
	return result
}

// LargestMonitorWorkStations returns every work station tied at the largest monitor size
func (s *computerServiceImpl) LargestMonitorWorkStations() ([]*models.WorkStation, error) {
	stations := s.repo.WorkStations()
	if len(stations) == 0 {
		return nil, apperrors.ErrNoWorkStations
	}

	largest := stations[0].MonitorSize
	for _, w := range stations[1:] {
		largest = max(largest, w.MonitorSize)
	}

	var result []*models.WorkStation
	for _, w := range stations {
		if w.MonitorSize == largest {
			result = append(result, w)
		}
	}
	return result, nil
}

func (s *computerServiceImpl) GroupByBrand() []BrandGroup {
	brands, byBrand := groupBy(s.repo.All(), brandOf)

	result := make([]BrandGroup, 0, len(brands))
	for _, brand := range brands {
		result = append(result, BrandGroup{Brand: brand, Computers: byBrand[brand]})
	}
	return result
}

func brandOf(c models.Computer) string {
	return c.Specs().Brand
}
