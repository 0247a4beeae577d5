package attendance

import (
	"iter"
	"time"
)

// DayCell is one cell of a month grid. Blank cells pad the first week so
// day 1 lands under its weekday (Sunday first).
type DayCell struct {
	Blank   bool    `json:"blank"`
	Day     int     `json:"day,omitempty"`
	Date    string  `json:"date,omitempty"`
	Record  *Record `json:"record,omitempty"`
	IsToday bool    `json:"isToday"`
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalendarGrid yields the grid for month of year: one blank cell per weekday
// before day 1, then one cell per day annotated with its record, if any.
// The sequence is recomputed on every iteration.
func CalendarGrid(records []Record, year int, month time.Month, today time.Time) iter.Seq[DayCell] {
	return func(yield func(DayCell) bool) {
		byDate := make(map[string]Record, len(records))
		for _, r := range records {
			if _, ok := byDate[r.Date]; !ok {
				byDate[r.Date] = r
			}
		}

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < int(first.Weekday()); i++ {
			if !yield(DayCell{Blank: true}) {
				return
			}
		}

		todayKey := today.Format(DateLayout)
		for day := 1; day <= DaysIn(year, month); day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
			cell := DayCell{Day: day, Date: date, IsToday: date == todayKey}
			if r, ok := byDate[date]; ok {
				cell.Record = &r
			}
			if !yield(cell) {
				return
			}
		}
	}
}
