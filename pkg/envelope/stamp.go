package envelope

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	gwerrors "newebpay/pkg/errors"
)

// Stamp produces and verifies the TradeSha integrity value: an upper-case
// hex SHA-256 over the ciphertext hex, the HashKey, and the HashIV
// concatenated in that order with no separators. The digest proves the
// ciphertext was produced by a holder of the shared secret; it does not
// encrypt anything itself.
type Stamp struct {
	hashKey string
	hashIV  string
}

// NewStamp builds a Stamp for the merchant's HashKey and HashIV.
func NewStamp(hashKey, hashIV string) *Stamp {
	return &Stamp{hashKey: hashKey, hashIV: hashIV}
}

// Generate computes the TradeSha for a TradeInfo ciphertext.
func (s *Stamp) Generate(tradeInfo string) string {
	sum := sha256.Sum256([]byte(tradeInfo + s.hashKey + s.hashIV))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Verify recomputes the stamp and compares it against the candidate. The
// comparison is case-insensitive on the candidate and constant-time.
func (s *Stamp) Verify(tradeInfo, tradeSha string) bool {
	want := s.Generate(tradeInfo)
	got := strings.ToUpper(tradeSha)
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// VerifyOrFail is Verify for callers wanting error-based control flow.
func (s *Stamp) VerifyOrFail(tradeInfo, tradeSha string) error {
	if !s.Verify(tradeInfo, tradeSha) {
		return gwerrors.New(gwerrors.CodeIntegrity, "TradeSha verification failed")
	}
	return nil
}
