// Package params holds the fixed vendor-defined parameter enums returned by
// and sent to the gateway. The string and integer values are part of the
// wire contract and must not change.
package params

// PaymentType identifies the payment method reported in callback results.
type PaymentType string

const (
	PaymentCredit     PaymentType = "CREDIT"
	PaymentCreditAE   PaymentType = "CREDITAE"
	PaymentWebATM     PaymentType = "WEBATM"
	PaymentVACC       PaymentType = "VACC"
	PaymentCVS        PaymentType = "CVS"
	PaymentBarcode    PaymentType = "BARCODE"
	PaymentLinePay    PaymentType = "LINEPAY"
	PaymentEsunWallet PaymentType = "ESUNWALLET"
	PaymentTaiwanPay  PaymentType = "TAIWANPAY"
	PaymentBitoPay    PaymentType = "BITOPAY"
	PaymentCVSCOM     PaymentType = "CVSCOM"
	PaymentApplePay   PaymentType = "APPLEPAY"
	PaymentGooglePay  PaymentType = "ANDROIDPAY"
	PaymentSamsungPay PaymentType = "SAMSUNGPAY"
	PaymentTWQR       PaymentType = "TWQR"
	PaymentFula       PaymentType = "FULA"
)

// String returns the wire value.
func (p PaymentType) String() string {
	return string(p)
}
