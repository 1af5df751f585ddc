package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var errInvalidQuery = errors.New("invalid query")

// queryDate membaca parameter YYYY-MM-DD sebagai tengah malam di loc. Kosong berarti nil.
func queryDate(c *fiber.Ctx, key string, loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return nil, errInvalidQuery
	}
	return &t, nil
}

func queryUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errInvalidQuery
	}
	return &id, nil
}

func queryString(c *fiber.Ctx, key string) *string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	return &raw
}

func queryBool(c *fiber.Ctx, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

// periodQuery: start_date dan end_date hanya berlaku jika keduanya diisi.
func periodQuery(c *fiber.Ctx, loc *time.Location) (report.PeriodQuery, error) {
	start, err := queryDate(c, "start_date", loc)
	if err != nil {
		return report.PeriodQuery{}, err
	}
	end, err := queryDate(c, "end_date", loc)
	if err != nil {
		return report.PeriodQuery{}, err
	}
	return report.PeriodQuery{Period: c.Query("period"), Start: start, End: end}, nil
}

// queryStatuses membaca daftar status dipisah koma, misalnya "HADIR,SAKIT".
func queryStatuses(c *fiber.Ctx, key string) ([]model.StatusAbsensi, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	var out []model.StatusAbsensi
	for _, part := range strings.Split(raw, ",") {
		s := model.StatusAbsensi(strings.ToUpper(strings.TrimSpace(part)))
		if s == "" {
			continue
		}
		if !s.Valid() {
			return nil, errInvalidQuery
		}
		out = append(out, s)
	}
	return out, nil
}

func paramUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, errInvalidQuery
	}
	return id, nil
}
