package util

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 单向密码散列，算法由配置选择
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) bool
}

// SHA256Hasher 与历史数据兼容的散列（无盐）
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Compare(hashed, plain string) bool {
	computed, _ := h.Hash(plain)
	return computed == hashed
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// NewPasswordHasher 未知算法名回退为 sha256
func NewPasswordHasher(algo string) PasswordHasher {
	switch algo {
	case "bcrypt":
		return BcryptHasher{}
	default:
		return SHA256Hasher{}
	}
}
