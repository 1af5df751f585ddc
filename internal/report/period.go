package report

import "time"

const (
	PeriodToday           = "today"
	PeriodLast7Days       = "last-7-days"
	PeriodLast30Days      = "last-30-days"
	PeriodCurrentSemester = "current-semester"
	PeriodCustom          = "custom"
)

// PeriodQuery memilih rentang laporan: Start dan End eksplisit, atau token periode.
type PeriodQuery struct {
	Period string
	Start  *time.Time
	End    *time.Time
}

type DateRange struct {
	Period string    `json:"period"`
	Start  time.Time `json:"start_date"`
	End    time.Time `json:"end_date"`
}

// ResolvePeriod menerjemahkan PeriodQuery menjadi rentang [Start, End] relatif terhadap now.
//
// Start/End eksplisit dikembalikan apa adanya (End tidak dibulatkan ke akhir hari).
// Token yang tidak dikenal diperlakukan seperti last-30-days. Tidak ada validasi Start <= End.
func ResolvePeriod(q PeriodQuery, now time.Time) DateRange {
	if q.Start != nil && q.End != nil {
		return DateRange{Period: PeriodCustom, Start: *q.Start, End: *q.End}
	}

	today := startOfDay(now)
	switch q.Period {
	case PeriodToday:
		return DateRange{Period: PeriodToday, Start: today, End: endOfDay(now)}
	case PeriodLast7Days:
		return DateRange{Period: PeriodLast7Days, Start: today.AddDate(0, 0, -7), End: now}
	case PeriodCurrentSemester:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		if now.Month() >= time.July {
			start = time.Date(now.Year(), time.July, 1, 0, 0, 0, 0, now.Location())
		}
		return DateRange{Period: PeriodCurrentSemester, Start: start, End: now}
	default:
		return DateRange{Period: PeriodLast30Days, Start: today.AddDate(0, 0, -30), End: now}
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
