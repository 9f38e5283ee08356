package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// 以下變數在測試中替換
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// PasswordMode 決定密碼如何儲存與比對
type PasswordMode string

const (
	// PasswordBcrypt stores bcrypt hashes.
	PasswordBcrypt PasswordMode = "bcrypt"
	// PasswordPlain stores the password as given and compares in constant time.
	PasswordPlain PasswordMode = "plain"
)

// ParsePasswordMode accepts "bcrypt", "plain" or "" (bcrypt).
func ParsePasswordMode(s string) (PasswordMode, error) {
	switch PasswordMode(s) {
	case "", PasswordBcrypt:
		return PasswordBcrypt, nil
	case PasswordPlain:
		return PasswordPlain, nil
	default:
		return "", fmt.Errorf("unknown password mode %q", s)
	}
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("HashPassword: %w", err)
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

func (m PasswordMode) encode(password string) (string, error) {
	if m == PasswordPlain {
		return password, nil
	}
	return HashPassword(password)
}

func (m PasswordMode) matches(stored, password string) bool {
	if m == PasswordPlain {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}
	return ComparePassword(stored, password) == nil
}
