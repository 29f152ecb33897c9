package query

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwerrors "newebpay/pkg/errors"
)

const (
	testMerchantID = "MS12345678"
	testHashKey    = "12345678901234567890123456789012"
	testHashIV     = "1234567890123456"
)

var testNow = time.Date(2023, 12, 31, 10, 30, 0, 0, time.UTC)

func Test_Order_Payload(t *testing.T) {
	q := NewOrder(testMerchantID, testHashKey, testHashIV)

	v := q.Payload("ORDER20231231001", 1000, testNow)

	assert.Equal(t, testMerchantID, v.Get("MerchantID"))
	assert.Equal(t, "1.3", v.Get("Version"))
	assert.Equal(t, "JSON", v.Get("RespondType"))
	assert.Equal(t, "ORDER20231231001", v.Get("MerchantOrderNo"))
	assert.Equal(t, "1000", v.Get("Amt"))
	assert.Equal(t, "1704018600", v.Get("TimeStamp"))
	assert.Equal(t, q.CheckValue("ORDER20231231001", 1000), v.Get("CheckValue"))
}

func Test_Order_CheckValueFormula(t *testing.T) {
	q := NewOrder(testMerchantID, testHashKey, testHashIV)

	raw := "HashIV=" + testHashIV +
		"&Amt=1000" +
		"&MerchantID=" + testMerchantID +
		"&MerchantOrderNo=ORDER20231231001" +
		"&HashKey=" + testHashKey
	sum := sha256.Sum256([]byte(raw))
	want := strings.ToUpper(hex.EncodeToString(sum[:]))

	assert.Equal(t, want, q.CheckValue("ORDER20231231001", 1000))
}

func Test_Order_CheckValueChangesWithInputs(t *testing.T) {
	q := NewOrder(testMerchantID, testHashKey, testHashIV)
	base := q.CheckValue("ORDER1", 1000)

	assert.NotEqual(t, base, q.CheckValue("ORDER2", 1000))
	assert.NotEqual(t, base, q.CheckValue("ORDER1", 1001))
	assert.NotEqual(t, base, NewOrder(testMerchantID, testHashKey, "6543210987654321").CheckValue("ORDER1", 1000))
}

func Test_CreditDetail_PayloadByOrderNo(t *testing.T) {
	q := NewCreditDetail(testMerchantID, testHashKey, testHashIV)

	v := q.PayloadByOrderNo("ORDER20231231001", 1000, testNow)

	assert.Equal(t, "1.0", v.Get("Version"))
	assert.Equal(t, "ORDER20231231001", v.Get("MerchantOrderNo"))
	assert.Empty(t, v.Get("TradeNo"))
	assert.NotEmpty(t, v.Get("CheckValue"))
}

func Test_CreditDetail_PayloadByTradeNo(t *testing.T) {
	q := NewCreditDetail(testMerchantID, testHashKey, testHashIV)

	v := q.PayloadByTradeNo("23123100000123456", 1000, testNow)

	assert.Equal(t, "23123100000123456", v.Get("TradeNo"))
	assert.Empty(t, v.Get("MerchantOrderNo"))
	assert.NotEmpty(t, v.Get("CheckValue"))
}

func Test_CreditDetail_CheckValueDependsOnKeyField(t *testing.T) {
	q := NewCreditDetail(testMerchantID, testHashKey, testHashIV)

	byOrder := q.PayloadByOrderNo("SAME", 1000, testNow).Get("CheckValue")
	byTrade := q.PayloadByTradeNo("SAME", 1000, testNow).Get("CheckValue")

	assert.NotEqual(t, byOrder, byTrade)
}

func Test_ParseResponse_Success(t *testing.T) {
	body := []byte(`{
		"Status": "SUCCESS",
		"Message": "查詢成功",
		"Result": {
			"MerchantOrderNo": "ORDER20231231001",
			"TradeNo": "23123100000123456",
			"Amt": 1000,
			"TradeStatus": "1"
		}
	}`)

	got, err := ParseResponse(body)

	require.NoError(t, err)
	assert.Equal(t, "ORDER20231231001", got["MerchantOrderNo"])
	assert.Equal(t, "23123100000123456", got["TradeNo"])
	assert.EqualValues(t, 1000, got["Amt"])
}

func Test_ParseResponse_GatewayFailure(t *testing.T) {
	body := []byte(`{"Status": "TRA10001", "Message": "查無交易", "Result": []}`)

	_, err := ParseResponse(body)

	require.Error(t, err)
	assert.True(t, gwerrors.HasCode(err, gwerrors.CodeGateway))
	assert.Contains(t, err.Error(), "TRA10001")
	assert.Contains(t, err.Error(), "查無交易")
}

func Test_ParseResponse_EmptyArrayResult(t *testing.T) {
	body := []byte(`{"Status": "SUCCESS", "Message": "ok", "Result": []}`)

	got, err := ParseResponse(body)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_ParseResponse_Malformed(t *testing.T) {
	_, err := ParseResponse([]byte("<html>502 Bad Gateway</html>"))

	require.Error(t, err)
	assert.True(t, gwerrors.HasCode(err, gwerrors.CodeDecode))
}
