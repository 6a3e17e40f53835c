package commands

import (
	"context"
	"log/slog"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/pricing"
	"staymarket/internal/infra/db"
	"staymarket/internal/infra/events"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingTxRetries = 3

type CreateBookingParams struct {
	PropertyID uuid.UUID
	GuestID    uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	ruleRepo     PricingRuleRepository
	bookingViews queries.BookingViewRepo
	engine       *pricing.Engine
	pool         *pgxpool.Pool
	cache        CacheInvalidator
	publisher    events.Publisher
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	ruleRepo PricingRuleRepository,
	bookingViews queries.BookingViewRepo,
	engine *pricing.Engine,
	pool *pgxpool.Pool,
	cacheSvc CacheInvalidator,
	publisher events.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		ruleRepo:     ruleRepo,
		bookingViews: bookingViews,
		engine:       engine,
		pool:         pool,
		cache:        cacheSvc,
		publisher:    publisher,
		clock:        clk,
		logger:       logger,
	}
}

// CreateBooking prices the stay and inserts the booking in one transaction.
// The availability check and the insert run under a per-property advisory
// lock, so two overlapping requests cannot both pass the check and commit.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	stay, err := booking.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}
	guests, err := booking.NewGuestCount(params.Guests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	bookingID, err := shared.RunInTxWithRetry(ctx, c.pool, bookingTxRetries, func(tx db.DBTX) (uuid.UUID, error) {
		prop, err := c.propertyRepo.FindByID(ctx, tx, params.PropertyID)
		if err != nil {
			return uuid.Nil, markNotFound(err, errs.ErrPropertyNotFound)
		}
		if !prop.IsActive() {
			return uuid.Nil, errs.ErrPropertyInactive
		}
		if !prop.CanHost(guests.Value()) {
			return uuid.Nil, errs.ErrTooManyGuests
		}
		if stay.Nights() < prop.MinNights() {
			return uuid.Nil, errs.ErrStayTooShort
		}

		if err := c.bookingRepo.LockProperty(ctx, tx, params.PropertyID); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		overlap, err := c.bookingRepo.HasBlockingOverlap(ctx, tx, params.PropertyID, stay)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlap {
			return uuid.Nil, errs.ErrDatesUnavailable
		}

		rules, err := c.ruleRepo.ActiveRulesByProperty(ctx, tx, params.PropertyID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		quote := c.engine.QuoteStay(prop.BaseRate(), stay.CheckIn(), stay.CheckOut(), c.clock.Now(), rules)

		entity, err := booking.NewBooking(params.PropertyID, params.GuestID, stay, guests, quote.Average, quote.Total)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		return c.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	c.afterPropertyMutation(ctx, params.PropertyID, events.TypeBookingCreated, map[string]any{
		"booking_id": bookingID,
		"check_in":   stay.CheckIn().Format(time.DateOnly),
		"check_out":  stay.CheckOut().Format(time.DateOnly),
	})

	return c.bookingViews.FindByID(ctx, bookingID)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error {
	propertyID, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		entity, err := c.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			return uuid.Nil, markNotFound(err, errs.ErrBookingNotFound)
		}
		if entity.GuestID() != guestID {
			return uuid.Nil, errs.ErrBookingNotFound
		}

		next, err := entity.Cancel()
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, next); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return entity.PropertyID(), nil
	})
	if err != nil {
		return err
	}

	c.afterPropertyMutation(ctx, propertyID, events.TypeBookingCancelled, map[string]any{
		"booking_id": bookingID,
	})
	return nil
}

// afterPropertyMutation evicts derived reads and fans the event out. Both are
// best-effort: the booking is already committed.
func (c *bookingCommandsImpl) afterPropertyMutation(ctx context.Context, propertyID uuid.UUID, eventType string, payload map[string]any) {
	if err := c.cache.InvalidateByTags(ctx, queries.PropertyTag(propertyID)); err != nil {
		c.logger.Warn("failed to invalidate property cache", "property_id", propertyID, "error", err)
	}

	event, err := events.New(eventType, propertyID, payload)
	if err != nil {
		c.logger.Warn("failed to build event", "type", eventType, "error", err)
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
