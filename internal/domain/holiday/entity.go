package holiday

import "time"

const DateLayout = "2006-01-02"

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	IsActive  bool
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateSet is a lookup of active holiday dates keyed by "2006-01-02".
type DateSet map[string]struct{}

func NewDateSet(holidays []Holiday) DateSet {
	set := make(DateSet, len(holidays))
	for _, h := range holidays {
		if !h.IsActive {
			continue
		}
		set[h.Date.Format(DateLayout)] = struct{}{}
	}
	return set
}

// Contains reports whether the given day is an active holiday.
func (s DateSet) Contains(date time.Time) bool {
	_, ok := s[date.Format(DateLayout)]
	return ok
}
