package action

import (
	"strconv"
	"time"

	"newebpay/pkg/envelope"
	"newebpay/pkg/params"
)

// EWalletRefund refunds e-wallet trades (LINE Pay, E.SUN Wallet, Taiwan Pay
// and friends). Unlike the credit-card APIs this endpoint takes a JSON body
// and an extra Pos_ stamp over the encrypted post data.
type EWalletRefund struct {
	merchantID string
	cipher     *envelope.Cipher
	stamp      *envelope.Stamp
}

// Refund API endpoint path.
const EWalletRefundPath = "/API/EWallet/Refund"

// NewEWalletRefund builds a refund payload builder.
func NewEWalletRefund(merchantID, hashKey, hashIV string) *EWalletRefund {
	return &EWalletRefund{
		merchantID: merchantID,
		cipher:     envelope.NewCipher(hashKey, hashIV),
		stamp:      envelope.NewStamp(hashKey, hashIV),
	}
}

// Payload builds the JSON body for one refund. The wallet API keys the
// amount as Amount, not Amt.
func (a *EWalletRefund) Payload(merchantOrderNo string, amt int, paymentType params.PaymentType, now time.Time) (map[string]string, error) {
	post := envelope.NewParams()
	post.Set("MerchantID", a.merchantID)
	post.Set("MerchantOrderNo", merchantOrderNo)
	post.Set("Amount", amt)
	post.Set("PaymentType", paymentType.String())
	post.Set("TimeStamp", strconv.FormatInt(now.Unix(), 10))

	postData, err := a.cipher.Encrypt(post)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"MerchantID_": a.merchantID,
		"PostData_":   postData,
		"Pos_":        a.stamp.Generate(postData),
	}, nil
}
