package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Schedule menjalankan digest sesuai ekspresi cron (5 field) di zona waktu loc.
// Pemanggil wajib memanggil Stop pada cron yang dikembalikan.
func Schedule(expr string, loc *time.Location, d *Digest, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	_, err := c.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := d.Run(ctx); err != nil {
			log.Error("digest keterisian gagal", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule digest %q: %w", expr, err)
	}

	log.Info("digest keterisian dijadwalkan", zap.String("cron", expr))
	c.Start()
	return c, nil
}
