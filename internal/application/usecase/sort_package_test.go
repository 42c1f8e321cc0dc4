package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/parcel-go/internal/application/dto"
	"github.com/hapkiduki/parcel-go/internal/application/port"
	"github.com/hapkiduki/parcel-go/internal/domain/entity"
	"github.com/hapkiduki/parcel-go/internal/domain/valueobject"
)

// nopLogger is a no-op port.Logger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})            {}
func (nopLogger) Info(string, ...interface{})             {}
func (nopLogger) Warn(string, ...interface{})             {}
func (nopLogger) Error(string, ...interface{})            {}
func (l nopLogger) With(...interface{}) port.Logger       { return l }
func (l nopLogger) WithContext(context.Context) port.Logger { return l }

func sortRequest(w, h, l, m float64) dto.SortRequest {
	return dto.SortRequest{
		Width:  valueobject.NewScalar(w),
		Height: valueobject.NewScalar(h),
		Length: valueobject.NewScalar(l),
		Mass:   valueobject.NewScalar(m),
	}
}

func TestSortPackageUseCase(t *testing.T) {
	uc := NewSortPackageUseCase(nopLogger{})

	result, err := uc.Sort(context.Background(), sortRequest(100, 100, 100, 10))
	require.NoError(t, err)

	assert.Equal(t, "SPECIAL", result.Category)
	assert.InDelta(t, 1_000_000, result.VolumeCM3, 1e-9)
	assert.InDelta(t, 100, result.MaxDimensionCM, 1e-9)
	assert.True(t, result.IsBulky)
	assert.False(t, result.IsHeavy)
}

func TestSortPackageUseCaseTextualInput(t *testing.T) {
	uc := NewSortPackageUseCase(nopLogger{})

	result, err := uc.Sort(context.Background(), dto.SortRequest{
		Width:  valueobject.NewScalarFromString("１００"),
		Height: valueobject.NewScalarFromString(" 100 "),
		Length: valueobject.NewScalarFromString("50"),
		Mass:   valueobject.NewScalarFromString("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "STANDARD", result.Category)
}

func TestSortPackageUseCaseValidationError(t *testing.T) {
	uc := NewSortPackageUseCase(nopLogger{})

	_, err := uc.Sort(context.Background(), dto.SortRequest{
		Width:  valueobject.NewScalarFromString("abc"),
		Height: valueobject.NewScalar(100),
		Length: valueobject.NewScalar(100),
		Mass:   valueobject.NewScalar(10),
	})
	require.Error(t, err)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "width", verr.Param)
	assert.ErrorIs(t, err, entity.ErrNotANumber)
}
