package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind        = errors.New("invalid pricing rule kind")
	ErrInvalidAdjustment  = errors.New("invalid adjustment kind")
	ErrInvalidDateWindow  = errors.New("rule end date must not precede start date")
	ErrInvalidDayOfWeek   = errors.New("days of week must be within 0-6")
	ErrInvalidNightsRange = errors.New("max nights must not be below min nights")
)

type Kind string

const (
	KindSeasonal    Kind = "seasonal"
	KindWeekend     Kind = "weekend"
	KindHoliday     Kind = "holiday"
	KindDemand      Kind = "demand"
	KindLastMinute  Kind = "last_minute"
	KindEarlyBird   Kind = "early_bird"
	KindWeekly      Kind = "weekly"
	KindMonthly     Kind = "monthly"
	KindMinimumStay Kind = "minimum_stay"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindSeasonal, KindWeekend, KindHoliday, KindDemand, KindLastMinute,
		KindEarlyBird, KindWeekly, KindMonthly, KindMinimumStay:
		return true
	default:
		return false
	}
}

type AdjustmentKind string

const (
	AdjustPercentage AdjustmentKind = "percentage"
	AdjustFixed      AdjustmentKind = "fixed"
)

func (a AdjustmentKind) IsValid() bool {
	return a == AdjustPercentage || a == AdjustFixed
}

// Rule adjusts a property's nightly price when its gates match the priced
// date. Rules chain in priority order; see Engine.
type Rule struct {
	id              uuid.UUID
	propertyID      uuid.UUID
	kind            Kind
	startDate       *time.Time
	endDate         *time.Time
	daysOfWeek      []time.Weekday
	adjustmentKind  AdjustmentKind
	adjustmentValue float64
	minNights       *int
	maxNights       *int
	minBookingValue *float64
	maxBookingValue *float64
	lastMinuteDays  *int
	advanceDays     *int
	priority        int
	sequence        int64
	active          bool
}

type RuleSpec struct {
	PropertyID      uuid.UUID
	Kind            Kind
	StartDate       *time.Time
	EndDate         *time.Time
	DaysOfWeek      []int
	AdjustmentKind  AdjustmentKind
	AdjustmentValue float64
	MinNights       *int
	MaxNights       *int
	MinBookingValue *float64
	MaxBookingValue *float64
	LastMinuteDays  *int
	AdvanceDays     *int
	Priority        int
}

func NewRule(spec RuleSpec) (*Rule, error) {
	if !spec.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !spec.AdjustmentKind.IsValid() {
		return nil, ErrInvalidAdjustment
	}
	if spec.StartDate != nil && spec.EndDate != nil && spec.EndDate.Before(*spec.StartDate) {
		return nil, ErrInvalidDateWindow
	}
	if spec.MinNights != nil && spec.MaxNights != nil && *spec.MaxNights < *spec.MinNights {
		return nil, ErrInvalidNightsRange
	}

	days := make([]time.Weekday, 0, len(spec.DaysOfWeek))
	for _, d := range spec.DaysOfWeek {
		if d < 0 || d > 6 {
			return nil, ErrInvalidDayOfWeek
		}
		days = append(days, time.Weekday(d))
	}

	return &Rule{
		id:              uuid.New(),
		propertyID:      spec.PropertyID,
		kind:            spec.Kind,
		startDate:       dayPtr(spec.StartDate),
		endDate:         dayPtr(spec.EndDate),
		daysOfWeek:      days,
		adjustmentKind:  spec.AdjustmentKind,
		adjustmentValue: spec.AdjustmentValue,
		minNights:       spec.MinNights,
		maxNights:       spec.MaxNights,
		minBookingValue: spec.MinBookingValue,
		maxBookingValue: spec.MaxBookingValue,
		lastMinuteDays:  spec.LastMinuteDays,
		advanceDays:     spec.AdvanceDays,
		priority:        spec.Priority,
		active:          true,
	}, nil
}

func ReconstructRule(
	id uuid.UUID,
	spec RuleSpec,
	sequence int64,
	active bool,
) *Rule {
	days := make([]time.Weekday, 0, len(spec.DaysOfWeek))
	for _, d := range spec.DaysOfWeek {
		days = append(days, time.Weekday(d))
	}
	return &Rule{
		id:              id,
		propertyID:      spec.PropertyID,
		kind:            spec.Kind,
		startDate:       dayPtr(spec.StartDate),
		endDate:         dayPtr(spec.EndDate),
		daysOfWeek:      days,
		adjustmentKind:  spec.AdjustmentKind,
		adjustmentValue: spec.AdjustmentValue,
		minNights:       spec.MinNights,
		maxNights:       spec.MaxNights,
		minBookingValue: spec.MinBookingValue,
		maxBookingValue: spec.MaxBookingValue,
		lastMinuteDays:  spec.LastMinuteDays,
		advanceDays:     spec.AdvanceDays,
		priority:        spec.Priority,
		sequence:        sequence,
		active:          active,
	}
}

// AppliesOn reports whether the rule contributes to the price of date, with
// today anchoring the advance-booking gates of last-minute and early-bird
// rules. The date window is inclusive on both ends; an unset side is
// unbounded. An empty days-of-week set matches every day.
func (r *Rule) AppliesOn(date, today time.Time) bool {
	if !r.active {
		return false
	}

	d := truncateToDay(date)
	if r.startDate != nil && d.Before(*r.startDate) {
		return false
	}
	if r.endDate != nil && d.After(*r.endDate) {
		return false
	}

	if len(r.daysOfWeek) > 0 {
		matched := false
		for _, w := range r.daysOfWeek {
			if d.Weekday() == w {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	advance := daysBetween(truncateToDay(today), d)
	switch r.kind {
	case KindLastMinute:
		if r.lastMinuteDays == nil || advance > *r.lastMinuteDays {
			return false
		}
	case KindEarlyBird:
		if r.advanceDays == nil || advance < *r.advanceDays {
			return false
		}
	}

	return true
}

// AppliesToBooking gates rule eligibility on the whole booking rather than a
// single night: stay length and booking value must sit inside the rule's
// configured bounds. Unset bounds do not constrain.
func (r *Rule) AppliesToBooking(bookingTotal float64, nights int) bool {
	if r.minNights != nil && nights < *r.minNights {
		return false
	}
	if r.maxNights != nil && nights > *r.maxNights {
		return false
	}
	if r.minBookingValue != nil && bookingTotal < *r.minBookingValue {
		return false
	}
	if r.maxBookingValue != nil && bookingTotal > *r.maxBookingValue {
		return false
	}
	return true
}

func (r *Rule) Deactivate() *Rule {
	clone := *r
	clone.active = false
	return &clone
}

func (r *Rule) ID() uuid.UUID                         { return r.id }
func (r *Rule) PropertyID() uuid.UUID                 { return r.propertyID }
func (r *Rule) Kind() Kind                            { return r.kind }
func (r *Rule) StartDate() *time.Time                 { return r.startDate }
func (r *Rule) EndDate() *time.Time                   { return r.endDate }
func (r *Rule) DaysOfWeek() []time.Weekday            { return r.daysOfWeek }
func (r *Rule) Adjustment() (AdjustmentKind, float64) { return r.adjustmentKind, r.adjustmentValue }
func (r *Rule) MinNights() *int                       { return r.minNights }
func (r *Rule) MaxNights() *int                       { return r.maxNights }
func (r *Rule) MinBookingValue() *float64             { return r.minBookingValue }
func (r *Rule) MaxBookingValue() *float64             { return r.maxBookingValue }
func (r *Rule) LastMinuteDays() *int                  { return r.lastMinuteDays }
func (r *Rule) AdvanceDays() *int                     { return r.advanceDays }
func (r *Rule) Priority() int                         { return r.priority }
func (r *Rule) Sequence() int64                       { return r.sequence }
func (r *Rule) IsActive() bool                        { return r.active }

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := truncateToDay(*t)
	return &d
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
