// Package usecase contains the application use cases that orchestrate
// the domain layer. Use cases own cross-cutting concerns like logging;
// the domain itself is pure.
package usecase

import (
	"context"

	"github.com/hapkiduki/parcel-go/internal/application/dto"
	"github.com/hapkiduki/parcel-go/internal/application/port"
	"github.com/hapkiduki/parcel-go/internal/domain/entity"
)

// SortPackageUseCase classifies a single parcel from raw measurements.
// It implements port.PackageSorter.
type SortPackageUseCase struct {
	log port.Logger
}

// NewSortPackageUseCase creates the use case.
//
// Parameters:
//   - log: structured logger for outcome logging
//
// Returns:
//   - *SortPackageUseCase: the created use case
func NewSortPackageUseCase(log port.Logger) *SortPackageUseCase {
	return &SortPackageUseCase{log: log}
}

// Sort validates the request measurements, classifies the parcel, and
// returns the category with the derived values. The first invalid
// parameter (checked width, height, length, mass) aborts classification.
//
// Parameters:
//   - ctx: request context (carries the request ID for logging)
//   - req: raw measurements
//
// Returns:
//   - dto.SortResult: category and derived values
//   - error: *entity.ValidationError for the first invalid parameter
func (uc *SortPackageUseCase) Sort(ctx context.Context, req dto.SortRequest) (dto.SortResult, error) {
	pkg, err := entity.NewPackage(req.Width, req.Height, req.Length, req.Mass)
	if err != nil {
		uc.log.WithContext(ctx).Warn("package validation failed", "error", err.Error())
		return dto.SortResult{}, err
	}

	result := dto.SortResult{
		Category:       string(pkg.Category()),
		VolumeCM3:      pkg.Volume(),
		MaxDimensionCM: pkg.MaxDimension(),
		IsBulky:        pkg.IsBulky(),
		IsHeavy:        pkg.IsHeavy(),
	}

	uc.log.WithContext(ctx).Info("package sorted",
		"category", result.Category,
		"dimensions", pkg.Dimensions().String(),
		"mass_kg", pkg.Mass(),
		"volume_cm3", result.VolumeCM3,
	)

	return result, nil
}
