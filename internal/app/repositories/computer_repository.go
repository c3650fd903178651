package repositories

import "github.com/yigit/classworks/internal/app/models"

// ComputerRepository is the computer inventory
type ComputerRepository struct {
	computers table[models.Computer]
}

// NewComputerRepository creates an empty inventory
func NewComputerRepository() *ComputerRepository {
	return &ComputerRepository{}
}

func (r *ComputerRepository) Add(computers ...models.Computer) { r.computers.insert(computers...) }
func (r *ComputerRepository) All() []models.Computer           { return r.computers.all() }

// Servers returns the servers in inventory order
func (r *ComputerRepository) Servers() []*models.Server {
	var servers []*models.Server
	for _, c := range r.computers.rows {
		if s, ok := c.(*models.Server); ok {
			servers = append(servers, s)
		}
	}
	return servers
}

// WorkStations returns the work stations in inventory order
func (r *ComputerRepository) WorkStations() []*models.WorkStation {
	var stations []*models.WorkStation
	for _, c := range r.computers.rows {
		if w, ok := c.(*models.WorkStation); ok {
			stations = append(stations, w)
		}
	}
	return stations
}
