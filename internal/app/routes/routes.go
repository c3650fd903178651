package routes

import (
	"context"
	"fmt"
	"io"

	"github.com/yigit/classworks/internal/app/controllers"
	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// Exercise names
const (
	Hospital      = "hospital"
	BookStore     = "bookstore"
	ServiceCenter = "servicecenter"
	University    = "university"
	Computers     = "computers"
	Bank          = "bank"
)

// Entry describes an exercise on the command line
type Entry struct {
	Name        string
	Description string
}

// Catalog lists the exercises in the order "all" runs them
var Catalog = []Entry{
	{Name: Hospital, Description: "Doctor revenue and patient spending"},
	{Name: BookStore, Description: "Buyer orders, country and author statistics"},
	{Name: ServiceCenter, Description: "Repair statistics exported to CSV and XML"},
	{Name: University, Description: "Grade report per group exported to XML"},
	{Name: Computers, Description: "Computer inventory reports"},
	{Name: Bank, Description: "Client accounts and VIP credits"},
}

// Router dispatches exercise names to controllers
type Router struct {
	exercises map[string]controllers.Exercise
}

// SetupRouter configures all exercise routes
func SetupRouter(
	hospitalController *controllers.HospitalController,
	bookStoreController *controllers.BookStoreController,
	serviceCenterController *controllers.ServiceCenterController,
	universityController *controllers.UniversityController,
	computerController *controllers.ComputerController,
	bankController *controllers.BankController,
) *Router {
	return &Router{exercises: map[string]controllers.Exercise{
		Hospital:      hospitalController,
		BookStore:     bookStoreController,
		ServiceCenter: serviceCenterController,
		University:    universityController,
		Computers:     computerController,
		Bank:          bankController,
	}}
}

// Dispatch runs the named exercise
func (r *Router) Dispatch(ctx context.Context, name string, out io.Writer) error {
	exercise, ok := r.exercises[name]
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrUnknownExercise, fmt.Sprintf("unknown exercise %q", name)).
			WithDetails(map[string]interface{}{"exercise": name})
	}
	return exercise.Run(ctx, out)
}

// RunAll runs every exercise in catalog order, stopping at the first failure
func (r *Router) RunAll(ctx context.Context, out io.Writer) error {
	for i, entry := range Catalog {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "=== %s ===\n", entry.Name); err != nil {
			return err
		}
		if err := r.Dispatch(ctx, entry.Name, out); err != nil {
			return fmt.Errorf("%s: %w", entry.Name, err)
		}
	}
	return nil
}
