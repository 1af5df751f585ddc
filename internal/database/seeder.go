package database

import (
	"fmt"
	"time"

	"jurnal-guru-backend/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedResult berisi akun hasil seeding untuk menerbitkan token development.
type SeedResult struct {
	Admin model.User
	Gurus []model.Guru
}

type guruSeed struct {
	username string
	nama     string
	nip      string
}

var (
	guruSeeds = []guruSeed{
		{"sari", "Sari Wulandari, S.Pd.", "198701012010012001"},
		{"budi", "Budi Santoso, S.Pd.", "198505152009011002"},
		{"rina", "Rina Marlina, M.Pd.", "199002202015032003"},
	}
	kelasSeeds = []struct {
		nama    string
		tingkat int
		jurusan string
	}{
		{"X IPA 1", 10, "IPA"},
		{"X IPS 1", 10, "IPS"},
		{"XI IPA 1", 11, "IPA"},
	}
	mapelSeeds = []struct{ nama, kode string }{
		{"Matematika", "MTK"},
		{"Bahasa Indonesia", "BIN"},
		{"Fisika", "FIS"},
	}
	namaSiswa = []string{"Andi", "Bunga", "Cahya", "Dimas", "Eka", "Fajar", "Gita", "Hadi"}
)

// SeedAll mengisi data master contoh. Aman dijalankan berulang kali.
func SeedAll(db *gorm.DB, log *zap.Logger) (*SeedResult, error) {
	var res SeedResult

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Akun Admin
		admin, err := seedUser(tx, "admin", "admin123", model.RoleAdmin)
		if err != nil {
			return err
		}
		res.Admin = admin

		// 2. Seed Guru
		for _, g := range guruSeeds {
			user, err := seedUser(tx, g.username, "guru123", model.RoleGuru)
			if err != nil {
				return err
			}
			guru := model.Guru{UserID: user.ID, Nama: g.nama, NIP: g.nip}
			if err := tx.Where(model.Guru{UserID: user.ID}).FirstOrCreate(&guru).Error; err != nil {
				return fmt.Errorf("seed guru %s: %w", g.username, err)
			}
			res.Gurus = append(res.Gurus, guru)
		}

		// 3. Seed Kelas + Siswa
		var kelasList []model.Kelas
		for i, k := range kelasSeeds {
			jurusan := k.jurusan
			kelas := model.Kelas{Nama: k.nama, Tingkat: k.tingkat, Jurusan: &jurusan}
			if err := tx.Where(model.Kelas{Nama: k.nama}).FirstOrCreate(&kelas).Error; err != nil {
				return fmt.Errorf("seed kelas %s: %w", k.nama, err)
			}
			kelasList = append(kelasList, kelas)

			for j, nama := range namaSiswa {
				jk := model.LakiLaki
				if j%2 == 1 {
					jk = model.Perempuan
				}
				siswa := model.Siswa{
					NISN:         fmt.Sprintf("00%02d%06d", i+1, j+1),
					Nama:         nama,
					JenisKelamin: jk,
					KelasID:      kelas.ID,
				}
				if err := tx.Where(model.Siswa{NISN: siswa.NISN}).FirstOrCreate(&siswa).Error; err != nil {
					return fmt.Errorf("seed siswa %s: %w", siswa.NISN, err)
				}
			}
		}

		// 4. Seed Mata Pelajaran
		var mapelList []model.MataPelajaran
		for _, m := range mapelSeeds {
			kode := m.kode
			mapel := model.MataPelajaran{Nama: m.nama, Kode: &kode}
			if err := tx.Where(model.MataPelajaran{Nama: m.nama}).FirstOrCreate(&mapel).Error; err != nil {
				return fmt.Errorf("seed mapel %s: %w", m.nama, err)
			}
			mapelList = append(mapelList, mapel)
		}

		// 5. Seed Jadwal: setiap guru mengajar satu mapel di tiap kelas, Senin s.d. Rabu
		semester, tahunAjaran := semesterBerjalan(time.Now())
		for gi, guru := range res.Gurus {
			for ki, kelas := range kelasList {
				jadwal := model.Jadwal{
					GuruID:          guru.ID,
					KelasID:         kelas.ID,
					MataPelajaranID: mapelList[gi].ID,
					Hari:            int(time.Monday) + ki,
					JamMulai:        fmt.Sprintf("%02d:00", 7+gi*2),
					JamSelesai:      fmt.Sprintf("%02d:30", 8+gi*2),
					Semester:        semester,
					TahunAjaran:     tahunAjaran,
				}
				if err := tx.Where(jadwal).FirstOrCreate(&jadwal).Error; err != nil {
					return fmt.Errorf("seed jadwal: %w", err)
				}
			}
		}

		// 6. Seed Hari Libur Nasional
		for _, l := range []model.HariLibur{
			{Tanggal: fmt.Sprintf("%d-08-17", time.Now().Year()), Keterangan: "Hari Kemerdekaan RI"},
			{Tanggal: fmt.Sprintf("%d-12-25", time.Now().Year()), Keterangan: "Hari Raya Natal"},
		} {
			libur := l
			if err := tx.Where(model.HariLibur{Tanggal: libur.Tanggal}).FirstOrCreate(&libur).Error; err != nil {
				return fmt.Errorf("seed hari libur: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info("seeding selesai", zap.Int("guru", len(res.Gurus)), zap.Int("kelas", len(kelasSeeds)))
	return &res, nil
}

// seedUser membuat user bila belum ada, lalu menyinkronkan password dengan nilai default.
func seedUser(tx *gorm.DB, username, password string, role model.Role) (model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{Username: username, Password: string(hashed), Role: role}
	if err := tx.Where(model.User{Username: username}).FirstOrCreate(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("seed user %s: %w", username, err)
	}
	if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return model.User{}, fmt.Errorf("seed user %s: %w", username, err)
	}
	return user, nil
}

// semesterBerjalan: Juli-Desember GANJIL tahun ajaran Y/Y+1, Januari-Juni GENAP tahun ajaran Y-1/Y.
func semesterBerjalan(now time.Time) (string, string) {
	y := now.Year()
	if now.Month() >= time.July {
		return model.SemesterGanjil, fmt.Sprintf("%d/%d", y, y+1)
	}
	return model.SemesterGenap, fmt.Sprintf("%d/%d", y-1, y)
}
