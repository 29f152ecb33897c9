// Package payment builds outbound MPG payment requests. A Request owns an
// ordered parameter bag with the gateway's fixed field names, enforces the
// per-field constraints at set time, and produces the encrypted envelope
// handed to the transport layer.
package payment

import (
	"net/url"
	"strconv"
	"time"

	"newebpay/pkg/envelope"
	gwerrors "newebpay/pkg/errors"
)

// Version is the MPG protocol version sent with every request.
const Version = "2.0"

// RequestPath is the MPG gateway endpoint, relative to the environment base
// URL owned by the transport collaborator.
const RequestPath = "/MPG/mpg_gateway"

// Field length limits fixed by the gateway.
const (
	MerchantOrderNoMaxLength = 30
	ItemDescMaxLength        = 50
	EmailMaxLength           = 50
)

// Trade limit bounds in seconds.
const (
	TradeLimitMin = 60
	TradeLimitMax = 900
)

// Envelope is the encrypted outbound payload. Field names match the wire
// contract exactly and must not be renamed.
type Envelope struct {
	MerchantID string
	TradeInfo  string
	TradeSha   string
	Version    string
}

// FormValues renders the envelope as the form fields the gateway expects.
func (e Envelope) FormValues() url.Values {
	return url.Values{
		"MerchantID": {e.MerchantID},
		"TradeInfo":  {e.TradeInfo},
		"TradeSha":   {e.TradeSha},
		"Version":    {e.Version},
	}
}

// Request accumulates a validated field set for one outbound payment and
// builds its envelope. Construct one via the method-specific constructors
// (NewCredit, NewCVS, ...); the zero value is not usable.
//
// A Request is not safe for concurrent mutation; use one per payment.
type Request struct {
	merchantID string
	spec       MethodSpec
	cipher     *envelope.Cipher
	stamp      *envelope.Stamp
	params     *envelope.Params
}

func newRequest(merchantID, hashKey, hashIV string, spec MethodSpec) *Request {
	r := &Request{
		merchantID: merchantID,
		spec:       spec,
		cipher:     envelope.NewCipher(hashKey, hashIV),
		stamp:      envelope.NewStamp(hashKey, hashIV),
		params:     envelope.NewParams(),
	}

	// Fixed defaults; order matters only for reproducible encodings.
	r.params.Set("MerchantID", merchantID)
	r.params.Set("MerchantOrderNo", "")
	r.params.Set("TimeStamp", strconv.FormatInt(time.Now().Unix(), 10))
	r.params.Set("Version", Version)
	r.params.Set("Amt", 0)
	r.params.Set("ItemDesc", "")
	r.params.Set("RespondType", "JSON")
	r.params.Set("LangType", "zh-tw")

	for _, flag := range spec.InitFlags {
		r.params.Set(flag, 1)
	}
	return r
}

// Method returns the name of the payment method this request was built for.
func (r *Request) Method() string {
	return r.spec.Name
}

// SetMerchantID overrides the merchant identifier.
func (r *Request) SetMerchantID(id string) {
	r.merchantID = id
	r.params.Set("MerchantID", id)
}

// SetMerchantOrderNo sets the merchant order number (non-empty, at most 30
// characters).
func (r *Request) SetMerchantOrderNo(orderNo string) error {
	if orderNo == "" {
		return gwerrors.Required("MerchantOrderNo")
	}
	if len(orderNo) > MerchantOrderNoMaxLength {
		return gwerrors.TooLong("MerchantOrderNo", MerchantOrderNoMaxLength)
	}
	r.params.Set("MerchantOrderNo", orderNo)
	return nil
}

// SetAmount sets the order amount in TWD. The amount must be positive and,
// for methods with an amount window (CVS, barcode, pickup), inside it.
func (r *Request) SetAmount(amount int) error {
	if err := r.spec.checkAmount(amount); err != nil {
		return err
	}
	r.params.Set("Amt", amount)
	return nil
}

// SetItemDesc sets the item description (at most 50 characters).
func (r *Request) SetItemDesc(desc string) error {
	if len(desc) > ItemDescMaxLength {
		return gwerrors.TooLong("ItemDesc", ItemDescMaxLength)
	}
	r.params.Set("ItemDesc", desc)
	return nil
}

// SetEmail sets the payer email (at most 50 characters).
func (r *Request) SetEmail(email string) error {
	if len(email) > EmailMaxLength {
		return gwerrors.TooLong("Email", EmailMaxLength)
	}
	r.params.Set("Email", email)
	return nil
}

// SetEmailModify controls whether the payer may edit the email on the
// gateway's payment page.
func (r *Request) SetEmailModify(allowed bool) {
	r.params.Set("EmailModify", allowed)
}

// SetTradeLimit sets the payment window in seconds (60 to 900).
func (r *Request) SetTradeLimit(seconds int) error {
	if seconds < TradeLimitMin || seconds > TradeLimitMax {
		return gwerrors.Invalid("TradeLimit", "must be between 60 and 900 seconds")
	}
	r.params.Set("TradeLimit", seconds)
	return nil
}

// SetExpireDate sets the payment deadline for code-based methods, formatted
// as the gateway expects (Y-m-d).
func (r *Request) SetExpireDate(date string) {
	r.params.Set("ExpireDate", date)
}

// SetTimestamp overrides the request timestamp; mainly for reproducible
// encodings in tests.
func (r *Request) SetTimestamp(unix int64) {
	r.params.Set("TimeStamp", strconv.FormatInt(unix, 10))
}

// SetReturnURL sets the browser-return URL after payment.
func (r *Request) SetReturnURL(u string) {
	r.params.Set("ReturnURL", u)
}

// SetNotifyURL sets the server-side callback URL.
func (r *Request) SetNotifyURL(u string) {
	r.params.Set("NotifyURL", u)
}

// SetCustomerURL sets the return URL for code-taking methods (ATM, CVS).
func (r *Request) SetCustomerURL(u string) {
	r.params.Set("CustomerURL", u)
}

// SetClientBackURL sets the "back to store" link on the payment page.
func (r *Request) SetClientBackURL(u string) {
	r.params.Set("ClientBackURL", u)
}

// SetOrderComment sets the note shown on the gateway's payment page.
func (r *Request) SetOrderComment(comment string) {
	r.params.Set("OrderComment", comment)
}

// SetLangType sets the payment page language (zh-tw or en).
func (r *Request) SetLangType(lang string) {
	r.params.Set("LangType", lang)
}

// Set stores an arbitrary wire field. Escape hatch for gateway fields this
// package has no typed setter for; no validation is applied.
func (r *Request) Set(key string, value any) {
	r.params.Set(key, value)
}

// Get reads a field back from the bag.
func (r *Request) Get(key string) (any, bool) {
	return r.params.Get(key)
}

// Params returns a copy of the current field bag, mainly for tests and
// debugging. Mutating the copy does not affect the request.
func (r *Request) Params() *envelope.Params {
	return r.params.Clone()
}

// validateBase runs the cross-field checks shared by every method.
func (r *Request) validateBase() error {
	if r.merchantID == "" {
		return gwerrors.Required("MerchantID")
	}
	if v, ok := r.params.Get("MerchantOrderNo"); !ok || v == "" {
		return gwerrors.Required("MerchantOrderNo")
	}
	if r.amount() <= 0 {
		return gwerrors.Required("Amt")
	}
	if v, ok := r.params.Get("ItemDesc"); !ok || v == "" {
		return gwerrors.Required("ItemDesc")
	}
	return nil
}

func (r *Request) amount() int {
	v, ok := r.params.Get("Amt")
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}

// BuildEnvelope validates the request and produces the encrypted envelope.
// It may be called again after mutation; each call re-validates and
// re-encrypts from current state.
func (r *Request) BuildEnvelope() (Envelope, error) {
	if err := r.validateBase(); err != nil {
		return Envelope{}, err
	}
	// Amount bounds are rechecked here so a caller writing the bag directly
	// through Set is still caught.
	if err := r.spec.checkAmount(r.amount()); err != nil {
		return Envelope{}, err
	}
	if r.spec.Validate != nil {
		if err := r.spec.Validate(r); err != nil {
			return Envelope{}, err
		}
	}

	payload := r.params.Clone()
	payload.Set("MerchantID", r.merchantID)

	tradeInfo, err := r.cipher.Encrypt(payload.Filtered())
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		MerchantID: r.merchantID,
		TradeInfo:  tradeInfo,
		TradeSha:   r.stamp.Generate(tradeInfo),
		Version:    Version,
	}, nil
}
