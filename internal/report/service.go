package report

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

type Service struct {
	store Store
	now   func() time.Time
}

// NewService: now menentukan "hari ini" beserta zona waktunya.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Persentase = round(count / total * 100), 0 jika total 0. Tidak dibatasi 100.
func Persentase(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
