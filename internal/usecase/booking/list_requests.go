package booking

import (
	"context"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/dto"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

func (uc *ListRequests) Execute(
	ctx context.Context,
	status string,
	parentID uint,
) ([]dto.RequestListDTO, error) {

	if status != "" && !domain.Status(status).IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	reqs, err := uc.repo.ListRequests(ctx, status, parentID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RequestListDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.RequestListDTO{
			ID:        r.ID,
			Date:      r.Date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Status:    r.Status,
			Notes:     r.Notes,
			Parent: dto.ParentDTO{
				ID:    r.Parent.ID,
				Name:  r.Parent.Name,
				Email: r.Parent.Email,
				Phone: r.Parent.Phone,
			},
		})
	}

	return out, nil
}
