package payment

import (
	"strconv"
	"strings"

	gwerrors "newebpay/pkg/errors"
	"newebpay/pkg/params"
)

// ValidInstallments are the installment periods the gateway accepts.
var ValidInstallments = []int{3, 6, 12, 18, 24, 30}

// LinePay image URL length limit.
const ImageURLMaxLength = 500

// NewCredit builds a one-time credit-card payment request.
func NewCredit(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, creditSpec())
}

// NewCreditInstallment builds a credit-card installment request. At least
// one installment period must be set before building.
func NewCreditInstallment(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, creditInstallmentSpec())
}

// NewWebATM builds a WebATM (online bank transfer) request.
func NewWebATM(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, webATMSpec())
}

// NewATM builds an ATM virtual-account request.
func NewATM(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, atmSpec())
}

// NewCVS builds a convenience-store payment-code request (30 to 20000 TWD).
func NewCVS(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, cvsSpec())
}

// NewBarcode builds a convenience-store barcode request (20 to 40000 TWD).
func NewBarcode(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, barcodeSpec())
}

// NewCVSCOM builds a convenience-store pickup request (30 to 20000 TWD).
// A logistics provider must be set before building.
func NewCVSCOM(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, cvscomSpec())
}

// NewLinePay builds a LINE Pay request.
func NewLinePay(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, linePaySpec())
}

// NewEsunWallet builds an E.SUN Wallet request.
func NewEsunWallet(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, esunWalletSpec())
}

// NewTaiwanPay builds a Taiwan Pay request.
func NewTaiwanPay(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, taiwanPaySpec())
}

// NewBitoPay builds a BitoPay crypto-payment request.
func NewBitoPay(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, bitoPaySpec())
}

// NewTWQR builds a TWQR (Taiwan universal QR code) request.
func NewTWQR(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, twqrSpec())
}

// NewFula builds a Fula (buy-now-pay-later) request.
func NewFula(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, fulaSpec())
}

// NewAllInOne builds a request with no method preselected. At least one
// method must be enabled via the Enable helpers before building.
func NewAllInOne(merchantID, hashKey, hashIV string) *Request {
	return newRequest(merchantID, hashKey, hashIV, allInOneSpec())
}

// SetRedeem toggles credit-card bonus-point redemption.
func (r *Request) SetRedeem(enabled bool) {
	r.params.Set("CreditRed", boolFlag(enabled))
}

// SetUnionPay toggles UnionPay card acceptance.
func (r *Request) SetUnionPay(enabled bool) {
	r.params.Set("UNIONPAY", boolFlag(enabled))
}

// SetGooglePay toggles Google Pay.
func (r *Request) SetGooglePay(enabled bool) {
	r.params.Set("ANDROIDPAY", boolFlag(enabled))
}

// SetSamsungPay toggles Samsung Pay.
func (r *Request) SetSamsungPay(enabled bool) {
	r.params.Set("SAMSUNGPAY", boolFlag(enabled))
}

// SetTokenTerm toggles credit-card quick checkout.
func (r *Request) SetTokenTerm(enabled bool) {
	r.params.Set("TokenTerm", boolFlag(enabled))
}

// SetTokenTermDemand sets the quick-checkout member identifier.
func (r *Request) SetTokenTermDemand(id string) {
	r.params.Set("TokenTermDemand", id)
}

// SetInstallments sets the installment periods offered to the payer. Each
// period must be one of 3, 6, 12, 18, 24 or 30.
func (r *Request) SetInstallments(periods ...int) error {
	flag, err := installmentFlag(periods)
	if err != nil {
		return err
	}
	r.params.Set("InstFlag", flag)
	return nil
}

// SetBankType selects the issuing bank for ATM virtual accounts.
func (r *Request) SetBankType(bank params.BankType) error {
	if !bank.Valid() {
		return gwerrors.Invalid("BankType", "bank must be BOT, HNCB or FIRST")
	}
	r.params.Set("BankType", bank.String())
	return nil
}

// SetLgsType selects the logistics provider for store pickup.
func (r *Request) SetLgsType(lgs params.LgsType) error {
	if !lgs.Valid() {
		return gwerrors.Invalid("LgsType", "provider must be FAMILY, UNIMART, HILIFE or OKMART")
	}
	r.params.Set("LgsType", lgs.String())
	return nil
}

// SetImageURL sets the product image shown on the LINE Pay screen.
func (r *Request) SetImageURL(u string) error {
	if len(u) > ImageURLMaxLength {
		return gwerrors.TooLong("ImageUrl", ImageURLMaxLength)
	}
	r.params.Set("ImageUrl", u)
	return nil
}

// Enable helpers for the all-in-one variant. Each turns one method flag on;
// they are no-ops semantically on single-method requests whose flag is
// already set.

func (r *Request) EnableCredit() { r.params.Set("CREDIT", 1) }

// EnableInstallments turns on credit-card payment with the given installment
// periods.
func (r *Request) EnableInstallments(periods ...int) error {
	flag, err := installmentFlag(periods)
	if err != nil {
		return err
	}
	r.params.Set("CREDIT", 1)
	r.params.Set("InstFlag", flag)
	return nil
}

func (r *Request) EnableWebATM()     { r.params.Set("WEBATM", 1) }
func (r *Request) EnableATM()        { r.params.Set("VACC", 1) }
func (r *Request) EnableCVS()        { r.params.Set("CVS", 1) }
func (r *Request) EnableBarcode()    { r.params.Set("BARCODE", 1) }
func (r *Request) EnableCVSCOM()     { r.params.Set("CVSCOM", 1) }
func (r *Request) EnableLinePay()    { r.params.Set("LINEPAY", 1) }
func (r *Request) EnableTaiwanPay()  { r.params.Set("TAIWANPAY", 1) }
func (r *Request) EnableEsunWallet() { r.params.Set("ESUNWALLET", 1) }
func (r *Request) EnableBitoPay()    { r.params.Set("BITOPAY", 1) }

// EnableAll turns on every directly payable method (pickup excluded, as it
// needs logistics fields of its own).
func (r *Request) EnableAll() {
	for _, flag := range methodFlags {
		if flag == "CVSCOM" {
			continue
		}
		r.params.Set(flag, 1)
	}
}

func boolFlag(enabled bool) int {
	if enabled {
		return 1
	}
	return 0
}

func installmentFlag(periods []int) (string, error) {
	if len(periods) == 0 {
		return "", gwerrors.Required("InstFlag")
	}
	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		if !validInstallment(p) {
			return "", gwerrors.Invalid("InstFlag", "periods must be 3, 6, 12, 18, 24 or 30")
		}
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, ","), nil
}

func validInstallment(p int) bool {
	for _, v := range ValidInstallments {
		if p == v {
			return true
		}
	}
	return false
}
