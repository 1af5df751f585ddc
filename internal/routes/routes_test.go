package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/testutil"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	Errors  json.RawMessage `json:"errors"`
}

type apiTest struct {
	t          *testing.T
	app        *fiber.App
	db         *gorm.DB
	adminToken string
	guruToken  string
	guru       model.Guru
	kelas      model.Kelas
	senin      model.Jadwal
	siswa      []model.Siswa
}

func setupAPI(t *testing.T) *apiTest {
	db := testutil.PrepareDB(t)
	cfg := &config.Config{Timezone: time.UTC, JWTSecret: "rahasia-test"}

	// encoder sama dengan cmd/api
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	Setup(app, db, cfg, zap.NewNop())

	admin := model.User{Username: "admin", Password: "x", Role: model.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	adminToken, err := middleware.GenerateToken(cfg.JWTSecret, admin.ID, model.RoleAdmin, time.Hour)
	require.NoError(t, err)

	guru := testutil.CreateGuru(t, db, "Bu Sari")
	guruToken, err := middleware.GenerateToken(cfg.JWTSecret, guru.UserID, model.RoleGuru, time.Hour)
	require.NoError(t, err)

	kelas := testutil.CreateKelas(t, db, "X IPA 1")
	mapel := testutil.CreateMapel(t, db, "Matematika")

	return &apiTest{
		t:          t,
		app:        app,
		db:         db,
		adminToken: adminToken,
		guruToken:  guruToken,
		guru:       guru,
		kelas:      kelas,
		senin:      testutil.CreateJadwal(t, db, guru, kelas, mapel, time.Monday, "07:00"),
		siswa: []model.Siswa{
			testutil.CreateSiswa(t, db, kelas, "Andi"),
			testutil.CreateSiswa(t, db, kelas, "Budi"),
		},
	}
}

func (a *apiTest) do(method, path, token string, body interface{}) (int, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(a.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (a *apiTest) jurnalBody(tanggal string) map[string]interface{} {
	return map[string]interface{}{
		"jadwal_id":           a.senin.ID,
		"tanggal":             tanggal,
		"tujuan_pembelajaran": "Memahami persamaan linear",
		"kegiatan":            "Diskusi kelompok",
		"status_ketercapaian": "TERCAPAI",
		"absensi": []map[string]interface{}{
			{"siswa_id": a.siswa[0].ID, "status": "HADIR"},
			{"siswa_id": a.siswa[1].ID, "status": "SAKIT"},
		},
		"tag_siswa": []map[string]interface{}{
			{"siswa_id": a.siswa[1].ID, "tag": "REMEDIAL"},
		},
	}
}

func TestHealth(t *testing.T) {
	a := setupAPI(t)
	resp, err := a.app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJurnalFlow(t *testing.T) {
	a := setupAPI(t)

	code, env := a.do("POST", "/api/guru/jurnal", a.guruToken, a.jurnalBody("2026-10-12"))
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	var created model.Jurnal
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Len(t, created.Absensi, 2)
	assert.Len(t, created.TagSiswa, 1)

	code, env = a.do("POST", "/api/guru/jurnal", a.guruToken, a.jurnalBody("2026-10-12"))
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "error", env.Status)

	body := a.jurnalBody("2026-10-19")
	body["link_bukti"] = "bukan-url"
	code, env = a.do("POST", "/api/guru/jurnal", a.guruToken, body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(env.Errors), "LinkBukti")

	code, env = a.do("GET", "/api/guru/jurnal?per_page=10", a.guruToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Meta), `"total":1`)

	code, _ = a.do("GET", "/api/guru/jurnal/"+created.ID.String(), a.guruToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, env = a.do("GET", "/api/guru/jadwal/hari-ini?tanggal=2026-10-12", a.guruToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"sudah_diisi":true`)

	code, env = a.do("GET", "/api/guru/jadwal/"+a.senin.ID.String()+"/siswa", a.guruToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), "Andi")

	// guru tidak boleh menghapus; admin boleh
	code, _ = a.do("DELETE", "/api/admin/jurnal/"+created.ID.String(), a.guruToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = a.do("DELETE", "/api/admin/jurnal/"+created.ID.String(), a.adminToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = a.do("GET", "/api/admin/jurnal/"+created.ID.String(), a.adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestJurnalGuruLain(t *testing.T) {
	a := setupAPI(t)
	lain := testutil.CreateGuru(t, a.db, "Pak Budi")
	token, err := middleware.GenerateToken("rahasia-test", lain.UserID, model.RoleGuru, time.Hour)
	require.NoError(t, err)

	code, _ := a.do("POST", "/api/guru/jurnal", token, a.jurnalBody("2026-10-12"))
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestAdminReports(t *testing.T) {
	a := setupAPI(t)

	code, _ := a.do("POST", "/api/guru/jurnal", a.guruToken, a.jurnalBody("2026-10-12"))
	require.Equal(t, fiber.StatusCreated, code)

	code, env := a.do("GET", "/api/admin/laporan/keterisian?start_date=2026-10-05&end_date=2026-10-18", a.adminToken, nil)
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var ket struct {
		Period      string `json:"period"`
		GuruReports []struct {
			NamaGuru         string `json:"nama_guru"`
			ExpectedSessions int    `json:"jadwal_seharusnya"`
			FiledJournals    int    `json:"jurnal_terisi"`
			Persentase       int    `json:"persentase"`
			IsRutin          bool   `json:"is_rutin"`
		} `json:"guru_reports"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &ket))
	assert.Equal(t, "custom", ket.Period)
	require.Len(t, ket.GuruReports, 1)
	assert.Equal(t, 2, ket.GuruReports[0].ExpectedSessions)
	assert.Equal(t, 1, ket.GuruReports[0].FiledJournals)
	assert.Equal(t, 50, ket.GuruReports[0].Persentase)
	assert.False(t, ket.GuruReports[0].IsRutin)

	code, env = a.do("GET", "/api/admin/laporan/absensi?start_date=2026-10-05&end_date=2026-10-18&kelas_id="+a.kelas.ID.String(), a.adminToken, nil)
	require.Equal(t, fiber.StatusOK, code, env.Message)

	var abs struct {
		ByClass []struct {
			NamaKelas       string `json:"nama_kelas"`
			Total           int    `json:"total"`
			PersentaseHadir int    `json:"persentase_hadir"`
		} `json:"by_class"`
		DailyStats []struct {
			Tanggal string `json:"tanggal"`
		} `json:"daily_stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &abs))
	require.Len(t, abs.ByClass, 1)
	assert.Equal(t, "X IPA 1", abs.ByClass[0].NamaKelas)
	assert.Equal(t, 2, abs.ByClass[0].Total)
	assert.Equal(t, 50, abs.ByClass[0].PersentaseHadir)
	require.Len(t, abs.DailyStats, 1)
	assert.Equal(t, "2026-10-12", abs.DailyStats[0].Tanggal)

	code, _ = a.do("GET", "/api/admin/laporan/absensi?status=BOLOS", a.adminToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = a.do("GET", "/api/admin/laporan/keterisian?start_date=05-10-2026", a.adminToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, env = a.do("GET", "/api/admin/dashboard", a.adminToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), `"guru":1`)
}

func TestAdminRoutesNeedToken(t *testing.T) {
	a := setupAPI(t)

	code, _ := a.do("GET", "/api/admin/dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = a.do("GET", "/api/admin/laporan/keterisian", a.guruToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestGuruJadwal(t *testing.T) {
	a := setupAPI(t)

	code, env := a.do("GET", "/api/guru/jadwal", a.guruToken, nil)
	require.Equal(t, fiber.StatusOK, code, env.Message)
	assert.Contains(t, string(env.Data), a.senin.ID.String())

	code, env = a.do("GET", "/api/guru/jadwal?semester=GENAP", a.guruToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.NotContains(t, string(env.Data), a.senin.ID.String())

	code, _ = a.do("GET", "/api/guru/jadwal?kelas_id=bukan-uuid", a.guruToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = a.do("GET", "/api/guru/jadwal", a.adminToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestHariLibur(t *testing.T) {
	a := setupAPI(t)
	body := map[string]interface{}{"tanggal": "2026-12-25", "keterangan": "Natal"}

	code, env := a.do("POST", "/api/admin/hari-libur", a.adminToken, body)
	require.Equal(t, fiber.StatusCreated, code, env.Message)
	var libur model.HariLibur
	require.NoError(t, json.Unmarshal(env.Data, &libur))

	code, _ = a.do("POST", "/api/admin/hari-libur", a.adminToken, body)
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = a.do("POST", "/api/admin/hari-libur", a.adminToken, map[string]interface{}{"tanggal": "25-12-2026"})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, env = a.do("GET", "/api/admin/hari-libur?start_date=2026-01-01&end_date=2026-12-31", a.adminToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(env.Data), "Natal")

	code, _ = a.do("DELETE", "/api/admin/hari-libur/"+libur.ID.String(), a.adminToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = a.do("DELETE", "/api/admin/hari-libur/"+libur.ID.String(), a.adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
