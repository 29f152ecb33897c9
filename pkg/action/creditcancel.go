// Package action builds payloads for post-trade operations against already
// authorized payments: cancelling an authorization, capturing or refunding
// a credit-card trade, and refunding e-wallet trades. Like pkg/query it
// performs no network I/O: callers post the payloads themselves and parse
// response bodies with query.ParseResponse.
package action

import (
	"net/url"
	"strconv"
	"time"

	"newebpay/pkg/envelope"
)

// CreditCancel voids a credit-card authorization that has not been captured.
type CreditCancel struct {
	merchantID string
	cipher     *envelope.Cipher
}

// Cancel API version and endpoint path.
const (
	CreditCancelVersion = "1.0"
	CreditCancelPath    = "/API/CreditCard/Cancel"
)

// NewCreditCancel builds a cancel payload builder.
func NewCreditCancel(merchantID, hashKey, hashIV string) *CreditCancel {
	return &CreditCancel{
		merchantID: merchantID,
		cipher:     envelope.NewCipher(hashKey, hashIV),
	}
}

// Payload builds the encrypted cancel request. When tradeNo is non-empty
// the lookup is keyed by the gateway trade number, otherwise by the
// merchant order number.
func (a *CreditCancel) Payload(merchantOrderNo string, amt int, tradeNo string, now time.Time) (url.Values, error) {
	post := envelope.NewParams()
	post.Set("RespondType", "JSON")
	post.Set("Version", CreditCancelVersion)
	post.Set("Amt", amt)
	post.Set("MerchantOrderNo", merchantOrderNo)
	post.Set("IndexType", indexType(tradeNo))
	post.Set("TimeStamp", strconv.FormatInt(now.Unix(), 10))
	if tradeNo != "" {
		post.Set("TradeNo", tradeNo)
	}

	return encryptedForm(a.merchantID, a.cipher, post)
}

// indexType is 1 for gateway-trade-number lookups and 2 for merchant order
// numbers, per the API contract.
func indexType(tradeNo string) string {
	if tradeNo != "" {
		return "1"
	}
	return "2"
}

// encryptedForm wraps the post data in the MerchantID_/PostData_ envelope
// the post-trade APIs expect.
func encryptedForm(merchantID string, cipher *envelope.Cipher, post *envelope.Params) (url.Values, error) {
	postData, err := cipher.Encrypt(post)
	if err != nil {
		return nil, err
	}
	return url.Values{
		"MerchantID_": {merchantID},
		"PostData_":   {postData},
	}, nil
}
