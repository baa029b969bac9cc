package booking

import (
	"context"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// FindAvailableSitters lists sitters holding a published slot that fully
// contains the requested window.
type FindAvailableSitters struct {
	repo domain.Repository
}

func NewFindAvailableSitters(repo domain.Repository) *FindAvailableSitters {
	return &FindAvailableSitters{repo: repo}
}

func (uc *FindAvailableSitters) Execute(
	ctx context.Context,
	date string,
	startTime string,
	endTime string,
) ([]models.Sitter, error) {

	w, err := domain.ParseWindow(date, startTime, endTime)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListAvailableSitters(ctx, w)
}
