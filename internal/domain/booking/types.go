package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// BlocksAvailability reports whether a booking in this status still occupies
// its dates. Only cancelled bookings release them.
func (s Status) BlocksAvailability() bool {
	return s != StatusCancelled
}

func (s Status) IsCancellable() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}
