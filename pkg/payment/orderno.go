package payment

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderNo generates a unique merchant order number with the given prefix,
// clipped to the gateway's 30-character limit. The suffix is derived from a
// random UUID, so collisions are practically impossible within one merchant.
func NewOrderNo(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	orderNo := prefix + suffix
	if len(orderNo) > MerchantOrderNoMaxLength {
		orderNo = orderNo[:MerchantOrderNoMaxLength]
	}
	return orderNo
}
