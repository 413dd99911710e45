package request

import (
	"math"

	"safari-booking/pkg/utils"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
	// MaxPage keeps (page-1)*per_page inside an int. Anything past it is
	// served as the (empty) last page.
	MaxPage = math.MaxInt / MaxPerPage
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// NewPaginatedRequest clamps client-supplied paging to sane bounds.
func NewPaginatedRequest(page, perPage int) *PaginatedRequest {
	req := &PaginatedRequest{Page: page, PerPage: perPage}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Page > MaxPage {
		req.Page = MaxPage
	}
	req.PerPage = req.Limit()
	return req
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
