package share

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var alphabetSize = big.NewInt(int64(len(idAlphabet)))

// NewID 生成指定长度的随机 base36 分享 ID
func NewID(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid share id length: %d", length)
	}
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return string(buf), nil
}
