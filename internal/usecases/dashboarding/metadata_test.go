package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func TestMetadataService_AvailableDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute)

	minDate := time.Date(2011, 5, 31, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetOrderDateBounds(gomock.Any()).Return(&minDate, &maxDate, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := svc.AvailableDateRange(context.Background())
		require.NoError(t, err)
		assert.Equal(t, minDate, got.MinDate)
		assert.Equal(t, maxDate, got.MaxDate)
	}
}

func TestMetadataService_FallbackDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute)
	repo.EXPECT().GetOrderDateBounds(gomock.Any()).Return(nil, nil, nil)

	got, err := svc.AvailableDateRange(context.Background())
	require.NoError(t, err)
	assert.Equal(t, day(2011, 1, 1), got.MinDate)
	assert.Equal(t, day(2014, 12, 31), got.MaxDate)
}

func TestMetadataService_DateRangeErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute)
	repo.EXPECT().GetOrderDateBounds(gomock.Any()).Return(nil, nil, assert.AnError)

	_, err := svc.AvailableDateRange(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMetadataService_FilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute, cache.WithClock(clock.Now))

	repo.EXPECT().ListCategories(gomock.Any()).Return([]string{"Clothing", "Bikes", "Bikes", "Accessories"}, nil).Times(2)
	repo.EXPECT().ListRegions(gomock.Any()).Return([]string{"Ontario", "Alberta"}, nil).Times(2)

	got, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Bikes", "Clothing"}, got.Categories)
	assert.Equal(t, []string{"Alberta", "Ontario"}, got.Regions)

	clock.Advance(9 * time.Minute)
	_, err = svc.FilterOptions(context.Background())
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.FilterOptions(context.Background())
	require.NoError(t, err)
}

func TestMetadataService_WarmAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute)

	minDate := day(2011, 5, 31)
	repo.EXPECT().GetOrderDateBounds(gomock.Any()).Return(&minDate, &minDate, nil)
	repo.EXPECT().ListCategories(gomock.Any()).Return([]string{"Bikes"}, nil)
	repo.EXPECT().ListRegions(gomock.Any()).Return([]string{"BC"}, nil)

	require.NoError(t, svc.Warm(context.Background()))

	caches := svc.Caches()
	require.Len(t, caches, 2)
	assert.Equal(t, "date_range", caches[0].Name())
	assert.Equal(t, "filter_options", caches[1].Name())
}

func TestMetadataService_IgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetadataRepository(ctrl)
	svc := NewMetadataService(repo, 10*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	minDate := day(2011, 5, 31)
	maxDate := day(2014, 6, 30)
	repo.EXPECT().GetOrderDateBounds(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*time.Time, *time.Time, error) {
			assert.NoError(t, ctx.Err())
			return &minDate, &maxDate, nil
		})
	repo.EXPECT().ListCategories(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]string, error) {
			assert.NoError(t, ctx.Err())
			return []string{"Bikes"}, nil
		})
	repo.EXPECT().ListRegions(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]string, error) {
			assert.NoError(t, ctx.Err())
			return []string{"BC"}, nil
		})

	got, err := svc.AvailableDateRange(ctx)
	require.NoError(t, err)
	assert.Equal(t, minDate, got.MinDate)

	options, err := svc.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bikes"}, options.Categories)
	assert.Equal(t, []string{"BC"}, options.Regions)
}
