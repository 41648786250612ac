package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status counts against the
// one-claim-per-(provider,date,time) constraint. A cancelled booking frees
// its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
