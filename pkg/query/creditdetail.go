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

// CreditDetail queries the detail record of a credit-card trade, either by
// merchant order number or by the gateway's trade number.
type CreditDetail struct {
	merchantID string
	hashKey    string
	hashIV     string
}

// Credit detail API version and endpoint path.
const (
	CreditDetailVersion = "1.0"
	CreditDetailPath    = "/API/CreditCard/TradeDetail"
)

// NewCreditDetail builds a credit-detail payload builder.
func NewCreditDetail(merchantID, hashKey, hashIV string) *CreditDetail {
	return &CreditDetail{merchantID: merchantID, hashKey: hashKey, hashIV: hashIV}
}

// PayloadByOrderNo builds the form fields for a lookup keyed by the
// merchant order number.
func (q *CreditDetail) PayloadByOrderNo(merchantOrderNo string, amt int, now time.Time) url.Values {
	v := q.base(amt, now)
	v.Set("MerchantOrderNo", merchantOrderNo)
	v.Set("CheckValue", q.checkValue("MerchantOrderNo", merchantOrderNo, amt))
	return v
}

// PayloadByTradeNo builds the form fields for a lookup keyed by the
// gateway trade number.
func (q *CreditDetail) PayloadByTradeNo(tradeNo string, amt int, now time.Time) url.Values {
	v := q.base(amt, now)
	v.Set("TradeNo", tradeNo)
	v.Set("CheckValue", q.checkValue("TradeNo", tradeNo, amt))
	return v
}

func (q *CreditDetail) base(amt int, now time.Time) url.Values {
	return url.Values{
		"MerchantID":  {q.merchantID},
		"Version":     {CreditDetailVersion},
		"RespondType": {"JSON"},
		"TimeStamp":   {strconv.FormatInt(now.Unix(), 10)},
		"Amt":         {strconv.Itoa(amt)},
	}
}

func (q *CreditDetail) checkValue(keyField, keyValue string, amt int) string {
	raw := fmt.Sprintf("HashIV=%s&Amt=%d&MerchantID=%s&%s=%s&HashKey=%s",
		q.hashIV, amt, q.merchantID, keyField, keyValue, q.hashKey)
	sum := sha256.Sum256([]byte(raw))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
