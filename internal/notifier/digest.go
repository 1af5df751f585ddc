package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"jurnal-guru-backend/internal/report"

	"go.uber.org/zap"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Rekap Keterisian Jurnal</h2>
<p>Periode {{.Start.Format "02-01-2006"}} s.d. {{.End.Format "02-01-2006"}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Guru</th><th>Jadwal Seharusnya</th><th>Jurnal Terisi</th><th>Persentase</th></tr>
{{- range .GuruReports}}
<tr><td>{{.NamaGuru}}</td><td>{{.ExpectedSessions}}</td><td>{{.FiledJournals}}</td><td>{{.Persentase}}%</td></tr>
{{- end}}
</table>
{{- with .Tertinggal}}
<p>Belum rutin mengisi jurnal (di bawah {{$.Batas}}%):</p>
<ul>
{{- range .}}
<li>{{.NamaGuru}} ({{.Persentase}}%)</li>
{{- end}}
</ul>
{{- else}}
<p>Semua guru rutin mengisi jurnal.</p>
{{- end}}
`))

type digestData struct {
	*report.KeterisianReport
	Tertinggal []report.KeterisianGuru
	Batas      int
}

// RenderDigest menghasilkan isi email HTML dari laporan keterisian.
func RenderDigest(r *report.KeterisianReport) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, digestData{
		KeterisianReport: r,
		Tertinggal:       r.BelumRutin(),
		Batas:            report.BatasRutin,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.String(), nil
}

// Digest mengirim rekap keterisian 7 hari terakhir ke admin.
type Digest struct {
	svc        *report.Service
	mailer     Mailer
	recipients []string
	log        *zap.Logger
}

func NewDigest(svc *report.Service, mailer Mailer, recipients []string, log *zap.Logger) *Digest {
	return &Digest{svc: svc, mailer: mailer, recipients: recipients, log: log}
}

func (d *Digest) Run(ctx context.Context) error {
	res, err := d.svc.Keterisian(ctx, report.KeterisianQuery{
		PeriodQuery: report.PeriodQuery{Period: report.PeriodLast7Days},
	})
	if err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	body, err := RenderDigest(res)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Rekap Keterisian Jurnal %s - %s",
		res.Start.Format("02/01/2006"), res.End.Format("02/01/2006"))
	if err := d.mailer.Send(ctx, d.recipients, subject, body); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	d.log.Info("digest keterisian terkirim",
		zap.Int("guru", len(res.GuruReports)),
		zap.Int("belum_rutin", len(res.BelumRutin())),
		zap.Strings("penerima", d.recipients),
	)
	return nil
}
