package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputerKind tells computer variants apart
type ComputerKind string

const (
	KindServer      ComputerKind = "Server"
	KindWorkStation ComputerKind = "WorkStation"
)

// Hardware holds what every computer has
type Hardware struct {
	Brand          string
	ProcessorSpeed int // MHz
	RAM            int // GB
	Disk           int // GB, main disk
	Price          int // USD
}

func (h Hardware) String() string {
	return fmt.Sprintf(`Brand: %s
        Processor speed: %d MHz
        RAM: %dGB
        Main disk: %dGB
        Price: $%d`, h.Brand, h.ProcessorSpeed, h.RAM, h.Disk, h.Price)
}

// Computer is implemented by *Server and *WorkStation
type Computer interface {
	Specs() Hardware
	Kind() ComputerKind
	String() string
}

// Server is a computer with extra disks
type Server struct {
	Hardware
	AdditionalDisks []int
}

func (s *Server) Specs() Hardware    { return s.Hardware }
func (s *Server) Kind() ComputerKind { return KindServer }

// TotalDiskSpace is the main disk plus every additional disk
func (s *Server) TotalDiskSpace() int {
	total := s.Disk
	for _, d := range s.AdditionalDisks {
		total += d
	}
	return total
}

func (s *Server) String() string {
	disks := make([]string, len(s.AdditionalDisks))
	for i, d := range s.AdditionalDisks {
		disks[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf(`Server:
        %s
        Additional disks: %sGB`, s.Hardware, strings.Join(disks, "GB, "))
}

// WorkStation is a computer with a monitor
type WorkStation struct {
	Hardware
	MonitorSize int // inches
}

func (w *WorkStation) Specs() Hardware    { return w.Hardware }
func (w *WorkStation) Kind() ComputerKind { return KindWorkStation }

func (w *WorkStation) String() string {
	return fmt.Sprintf(`WorkStation:
        %s
        Monitor size: %d'`, w.Hardware, w.MonitorSize)
}
