package middleware

import (
	"strings"
	"time"

	"jurnal-guru-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalGuruID = "guru_id"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken menerbitkan token HS256. Dipakai seeder untuk token development.
func GenerateToken(secret string, userID uuid.UUID, role model.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Token tidak ditemukan")
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. Parse dan Validasi Token
		var claims Claims
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return unauthorized(c, "Token tidak valid atau kadaluwarsa")
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthorized(c, "Token tidak valid atau kadaluwarsa")
		}

		// 3. Simpan data user ke Context agar bisa dipakai di Handler
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    fiber.StatusUnauthorized,
		"status":  "error",
		"message": message,
	})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"code":    fiber.StatusForbidden,
		"status":  "error",
		"message": message,
	})
}

// UserID mengambil user_id yang disimpan Auth.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalUserID).(uuid.UUID)
	return id, ok
}

// GuruID mengambil guru_id yang disimpan ResolveGuru.
func GuruID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalGuruID).(uuid.UUID)
	return id, ok
}
