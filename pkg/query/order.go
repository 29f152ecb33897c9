// Package query builds payloads for the gateway's trade-lookup APIs and
// parses their JSON responses. It performs no network I/O: callers post the
// form values with their own HTTP client against the environment base URL
// and feed the body back into ParseResponse.
package query

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Order queries the state of a single trade.
type Order struct {
	merchantID string
	hashKey    string
	hashIV     string
}

// Trade query API version and endpoint path.
const (
	OrderVersion = "1.3"
	OrderPath    = "/API/QueryTradeInfo"
)

// NewOrder builds a trade-query payload builder.
func NewOrder(merchantID, hashKey, hashIV string) *Order {
	return &Order{merchantID: merchantID, hashKey: hashKey, hashIV: hashIV}
}

// Payload builds the form fields for querying one order. Unlike the MPG
// envelope, the query API sends fields in the clear with a CheckValue
// digest over a fixed subset.
func (q *Order) Payload(merchantOrderNo string, amt int, now time.Time) url.Values {
	return url.Values{
		"MerchantID":      {q.merchantID},
		"Version":         {OrderVersion},
		"RespondType":     {"JSON"},
		"CheckValue":      {q.CheckValue(merchantOrderNo, amt)},
		"TimeStamp":       {strconv.FormatInt(now.Unix(), 10)},
		"MerchantOrderNo": {merchantOrderNo},
		"Amt":             {strconv.Itoa(amt)},
	}
}

// CheckValue computes the query API digest. Its formula differs from the
// MPG TradeSha: the secret wraps an ordered key=value string instead of
// being appended to ciphertext.
func (q *Order) CheckValue(merchantOrderNo string, amt int) string {
	raw := fmt.Sprintf("HashIV=%s&Amt=%d&MerchantID=%s&MerchantOrderNo=%s&HashKey=%s",
		q.hashIV, amt, q.merchantID, merchantOrderNo, q.hashKey)
	sum := sha256.Sum256([]byte(raw))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
