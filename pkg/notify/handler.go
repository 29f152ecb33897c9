// Package notify verifies and decodes asynchronous payment-result callbacks
// (ReturnURL / NotifyURL deliveries). Input is untrusted: the handler checks
// the integrity stamp before decrypting, and fails closed on anything
// malformed.
package notify

import (
	"strconv"

	"newebpay/pkg/envelope"
	gwerrors "newebpay/pkg/errors"
	"newebpay/pkg/params"
)

// Handler turns one inbound callback into a trusted decoded result. Create
// one per callback; a second Verify call simply overwrites prior state.
type Handler struct {
	cipher *envelope.Cipher
	stamp  *envelope.Stamp

	raw      map[string]string
	data     map[string]any
	verified bool
}

// New builds a Handler for the merchant's HashKey and HashIV.
func New(hashKey, hashIV string) *Handler {
	return &Handler{
		cipher: envelope.NewCipher(hashKey, hashIV),
		stamp:  envelope.NewStamp(hashKey, hashIV),
		data:   map[string]any{},
	}
}

// Verify checks the TradeSha over the inbound TradeInfo and, only if it
// matches, decrypts and stores the result. It returns false (never an error
// or panic) on missing fields, a stamp mismatch, or a decode failure, so a
// public callback endpoint cannot be crashed by foreign input. The
// ciphertext is never decrypted when the stamp fails.
func (h *Handler) Verify(raw map[string]string) bool {
	h.raw = raw
	h.data = map[string]any{}
	h.verified = false

	tradeInfo, okInfo := raw["TradeInfo"]
	tradeSha, okSha := raw["TradeSha"]
	if !okInfo || !okSha {
		return false
	}

	if !h.stamp.Verify(tradeInfo, tradeSha) {
		return false
	}

	data, err := h.cipher.Decrypt(tradeInfo)
	if err != nil {
		return false
	}

	h.data = data
	h.verified = true
	return true
}

// VerifyOrFail is Verify for callers wanting error-based control flow.
func (h *Handler) VerifyOrFail(raw map[string]string) error {
	if !h.Verify(raw) {
		return gwerrors.New(gwerrors.CodeIntegrity, "callback verification failed")
	}
	return nil
}

// IsVerified reports whether the last Verify call succeeded.
func (h *Handler) IsVerified() bool {
	return h.verified
}

// RawData returns the untouched inbound fields, for auditing.
func (h *Handler) RawData() map[string]string {
	return h.raw
}

// Data returns the decoded callback payload. Empty until Verify succeeds.
func (h *Handler) Data() map[string]any {
	return h.data
}

// Result returns the decoded Result sub-object, or an empty map.
func (h *Handler) Result() map[string]string {
	if m, ok := h.data["Result"].(map[string]string); ok {
		return m
	}
	return map[string]string{}
}

// IsSuccess reports whether the callback carries Status "SUCCESS". No other
// status value is ever treated as success.
func (h *Handler) IsSuccess() bool {
	return h.Status() == "SUCCESS"
}

// Status returns the top-level callback status, or "".
func (h *Handler) Status() string {
	return h.topLevel("Status")
}

// Message returns the gateway's status message, or "".
func (h *Handler) Message() string {
	return h.topLevel("Message")
}

// MerchantID returns the merchant identifier from the decoded payload.
func (h *Handler) MerchantID() string {
	return h.topLevel("MerchantID")
}

// MerchantOrderNo returns the merchant order number from the result.
func (h *Handler) MerchantOrderNo() string {
	return h.resultString("MerchantOrderNo")
}

// TradeNo returns the gateway's trade serial number.
func (h *Handler) TradeNo() string {
	return h.resultString("TradeNo")
}

// Amount returns the paid amount, or 0.
func (h *Handler) Amount() int {
	return h.resultInt("Amt")
}

// PaymentType returns the payment method that completed the trade.
func (h *Handler) PaymentType() params.PaymentType {
	return params.PaymentType(h.resultString("PaymentType"))
}

// PayTime returns the gateway's payment time string.
func (h *Handler) PayTime() string {
	return h.resultString("PayTime")
}

// IP returns the payer IP address.
func (h *Handler) IP() string {
	return h.resultString("IP")
}

// PayBankCode returns the paying bank code.
func (h *Handler) PayBankCode() string {
	return h.resultString("PayBankCode")
}

// AuthCode returns the credit-card authorization code.
func (h *Handler) AuthCode() string {
	return h.resultString("Auth")
}

// Card4No returns the last four digits of the card number.
func (h *Handler) Card4No() string {
	return h.resultString("Card4No")
}

// Card6No returns the first six digits of the card number.
func (h *Handler) Card6No() string {
	return h.resultString("Card6No")
}

// ECI returns the 3-D Secure ECI value.
func (h *Handler) ECI() string {
	return h.resultString("ECI")
}

// Inst returns the number of installment periods, or 0.
func (h *Handler) Inst() int {
	return h.resultInt("Inst")
}

// InstFirst returns the first installment amount, or 0.
func (h *Handler) InstFirst() int {
	return h.resultInt("InstFirst")
}

// InstEach returns the per-period installment amount, or 0.
func (h *Handler) InstEach() int {
	return h.resultInt("InstEach")
}

func (h *Handler) topLevel(key string) string {
	if s, ok := h.data[key].(string); ok {
		return s
	}
	return ""
}

func (h *Handler) resultString(key string) string {
	return h.Result()[key]
}

func (h *Handler) resultInt(key string) int {
	n, _ := strconv.Atoi(h.Result()[key])
	return n
}
