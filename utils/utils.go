package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// NewMatchID builds a readable id like "m_20250301_lions_tigers_3f9a1c".
func NewMatchID(homeID, awayID string, date time.Time) string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return "m_" + date.UTC().Format("20060102") + "_" + slug(homeID) + "_" + slug(awayID) + "_" + hex.EncodeToString(suffix)
}

func slug(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "x"
	}
	return s
}
