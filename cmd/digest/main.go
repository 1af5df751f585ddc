package main

import (
	"context"
	"time"

	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/notifier"
	"jurnal-guru-backend/internal/report"

	"go.uber.org/zap"
)

// digest mengirim rekap keterisian 7 hari terakhir sekali lalu keluar. Cocok untuk cron sistem.
func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg)
	defer log.Sync()

	if len(cfg.DigestRecipients) == 0 {
		log.Fatal("DIGEST_RECIPIENTS kosong")
	}

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("koneksi database gagal", zap.Error(err))
	}

	svc := report.NewService(report.NewRepositoryStore(db), func() time.Time {
		return time.Now().In(cfg.Timezone)
	})
	digest := notifier.NewDigest(svc, notifier.NewSMTPMailer(cfg.SMTP()), cfg.DigestRecipients, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := digest.Run(ctx); err != nil {
		log.Fatal("digest gagal", zap.Error(err))
	}
}
