package action

import (
	"net/url"
	"strconv"
	"time"

	"newebpay/pkg/envelope"
)

// CloseType selects capture versus refund on the close API.
type CloseType int

const (
	// ClosePay captures an authorized trade.
	ClosePay CloseType = 1
	// CloseRefund refunds a captured trade.
	CloseRefund CloseType = 2
)

// CreditClose captures or refunds credit-card trades, and cancels pending
// capture/refund requests.
type CreditClose struct {
	merchantID string
	cipher     *envelope.Cipher
}

// Close API version and endpoint path.
const (
	CreditCloseVersion = "1.1"
	CreditClosePath    = "/API/CreditCard/Close"
)

// NewCreditClose builds a close payload builder.
func NewCreditClose(merchantID, hashKey, hashIV string) *CreditClose {
	return &CreditClose{
		merchantID: merchantID,
		cipher:     envelope.NewCipher(hashKey, hashIV),
	}
}

// Pay builds a capture request for an authorized trade.
func (a *CreditClose) Pay(merchantOrderNo string, amt int, tradeNo string, now time.Time) (url.Values, error) {
	return a.payload(merchantOrderNo, amt, ClosePay, tradeNo, false, now)
}

// Refund builds a refund request for a captured trade.
func (a *CreditClose) Refund(merchantOrderNo string, amt int, tradeNo string, now time.Time) (url.Values, error) {
	return a.payload(merchantOrderNo, amt, CloseRefund, tradeNo, false, now)
}

// CancelClose builds a request cancelling a pending capture or refund.
func (a *CreditClose) CancelClose(merchantOrderNo string, amt int, closeType CloseType, tradeNo string, now time.Time) (url.Values, error) {
	return a.payload(merchantOrderNo, amt, closeType, tradeNo, true, now)
}

func (a *CreditClose) payload(merchantOrderNo string, amt int, closeType CloseType, tradeNo string, cancel bool, now time.Time) (url.Values, error) {
	post := envelope.NewParams()
	post.Set("RespondType", "JSON")
	post.Set("Version", CreditCloseVersion)
	post.Set("Amt", amt)
	post.Set("MerchantOrderNo", merchantOrderNo)
	post.Set("IndexType", indexType(tradeNo))
	post.Set("TimeStamp", strconv.FormatInt(now.Unix(), 10))
	post.Set("CloseType", int(closeType))
	if tradeNo != "" {
		post.Set("TradeNo", tradeNo)
	}
	if cancel {
		post.Set("Cancel", 1)
	}

	return encryptedForm(a.merchantID, a.cipher, post)
}
