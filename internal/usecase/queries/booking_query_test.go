//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/builder"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_IsAvailable(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	testCases := []struct {
		name            string
		overlap         bool
		repoError       error
		expectAvailable bool
		expectedError   bool
	}{
		{name: "success: no overlapping booking means available", overlap: false, expectAvailable: true},
		{name: "success: a blocking overlap means unavailable", overlap: true, expectAvailable: false},
		{name: "error: store failure propagates", repoError: errors.New("connection refused"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			repo.EXPECT().HasBlockingOverlap(ctx, propertyID, gomock.Any()).
				Return(tc.overlap, tc.repoError)

			q := queries.NewAvailabilityQueries(repo)
			view, err := q.IsAvailable(ctx, propertyID, checkIn, checkOut)

			if tc.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, propertyID, view.PropertyID)
			assert.Equal(t, tc.expectAvailable, view.Available)
		})
	}
}

func TestAvailabilityQueries_IsAvailable_InvalidRange(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := queriesmock.NewMockBookingViewRepo(ctrl)
	q := queries.NewAvailabilityQueries(repo)

	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	// check-out before check-in never reaches the store
	_, err := q.IsAvailable(ctx, uuid.New(), checkIn, checkIn.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStayRange))

	// zero-night stay is rejected as well
	_, err = q.IsAvailable(ctx, uuid.New(), checkIn, checkIn)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStayRange))
}

func TestBookingQueries_ListLimits(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	propertyID := uuid.New()
	item := builder.NewBookingBuilder().BuildListItem()

	testCases := []struct {
		name          string
		requested     int
		expectedLimit int32
	}{
		{name: "zero limit falls back to the default page size", requested: 0, expectedLimit: 50},
		{name: "negative limit falls back to the default page size", requested: -3, expectedLimit: 50},
		{name: "in-range limit is forwarded", requested: 25, expectedLimit: 25},
		{name: "oversized limit is clamped to the default page size", requested: 1000, expectedLimit: 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			q := queries.NewBookingQueries(repo)

			repo.EXPECT().FindByGuest(ctx, guestID, tc.expectedLimit).
				Return([]*queries.BookingListItem{item}, nil)
			byGuest, err := q.ListByGuest(ctx, guestID, tc.requested)
			require.NoError(t, err)
			assert.Len(t, byGuest, 1)

			repo.EXPECT().FindByProperty(ctx, propertyID, tc.expectedLimit).
				Return(nil, nil)
			_, err = q.ListByProperty(ctx, propertyID, tc.requested)
			require.NoError(t, err)
		})
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := builder.NewBookingBuilder().BuildView()
	repo := queriesmock.NewMockBookingViewRepo(ctrl)
	repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

	q := queries.NewBookingQueries(repo)
	got, err := q.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}
