package services

import (
	"context"

	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/pesobank/pesobank/internal/dto"
)

// InterestSvcFacade defines operations for projecting interest on a balance.
type InterestSvcFacade interface {
	// ProjectInterest produces a per-day schedule of interest added to an
	// account's balance over the requested horizon.
	ProjectInterest(ctx context.Context, req dto.InterestProjectionRequest) (*domain.InterestSchedule, error)

	// AnnualRatePercent returns the annual rate truncated to a whole percent.
	AnnualRatePercent() int64
}
