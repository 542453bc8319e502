package leave

import (
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/leave"
)

const dateLayout = "2006-01-02"

// DayCounter classifies an inclusive date range into working, weekend
// and holiday buckets. Pure: the holiday set is passed in.
type DayCounter struct{}

func NewDayCounter() *DayCounter {
	return &DayCounter{}
}

// Count walks start..end one day at a time. A day's type is holiday
// over weekend over working, but the weekend and holiday counters each
// tick independently: a Saturday holiday counts in both buckets.
// Callers validate start <= end before calling.
func (c *DayCounter) Count(start, end time.Time, holidays holiday.DateSet) leave.CalculateDaysResponse {
	resp := leave.CalculateDaysResponse{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Days:      []leave.DayDetail{},
	}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayType := "working"
		subType := ""

		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			resp.Weekends++
			dayType = "weekend"
			if wd == time.Saturday {
				subType = "Saturday"
			} else {
				subType = "Sunday"
			}
		}

		if holidays.Contains(date) {
			resp.Holidays++
			dayType = "holiday"
		}

		if dayType == "working" {
			resp.WorkingDays++
		}

		resp.Days = append(resp.Days, leave.DayDetail{
			Type:     dayType,
			SubType:  subType,
			FullDate: date.Format(dateLayout),
		})
	}

	return resp
}
