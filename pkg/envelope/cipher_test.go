package envelope

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwerrors "newebpay/pkg/errors"
)

const (
	testHashKey = "12345678901234567890123456789012"
	testHashIV  = "1234567890123456"
)

var hexLower = regexp.MustCompile(`^[0-9a-f]+$`)

func orderParams() *Params {
	p := NewParams()
	p.Set("MerchantID", "MS12345678")
	p.Set("MerchantOrderNo", "ORDER20231231001")
	p.Set("Amt", 1000)
	p.Set("ItemDesc", "black tea")
	return p
}

func Test_Cipher_EncryptProducesLowercaseHex(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	got, err := c.Encrypt(orderParams())

	require.NoError(t, err)
	assert.Regexp(t, hexLower, got)
	assert.Zero(t, len(got)%32, "ciphertext hex must cover whole AES blocks")
}

func Test_Cipher_EncryptIsDeterministic(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	first, err := c.Encrypt(orderParams())
	require.NoError(t, err)
	second, err := c.Encrypt(orderParams())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Cipher_RoundTrip(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	enc, err := c.Encrypt(orderParams())
	require.NoError(t, err)

	got, err := c.Decrypt(enc)
	require.NoError(t, err)

	assert.Equal(t, "MS12345678", got["MerchantID"])
	assert.Equal(t, "ORDER20231231001", got["MerchantOrderNo"])
	assert.Equal(t, "1000", got["Amt"])
	assert.Equal(t, "black tea", got["ItemDesc"])
}

func Test_Cipher_RoundTripNested(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	result := NewParams()
	result.Set("TradeNo", "23123100000123456")
	result.Set("Status", "SUCCESS")
	p := NewParams()
	p.Set("Status", "SUCCESS")
	p.Set("Result", result)

	enc, err := c.Encrypt(p)
	require.NoError(t, err)
	got, err := c.Decrypt(enc)
	require.NoError(t, err)

	nested, ok := got["Result"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "23123100000123456", nested["TradeNo"])
	assert.Equal(t, "SUCCESS", nested["Status"])
}

func Test_Cipher_RoundTripMultibyte(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	p := NewParams()
	p.Set("ItemDesc", "烏龍茶一組")

	enc, err := c.Encrypt(p)
	require.NoError(t, err)
	got, err := c.Decrypt(enc)
	require.NoError(t, err)

	assert.Equal(t, "烏龍茶一組", got["ItemDesc"])
}

func Test_Cipher_EncryptRejectsBadKeySizes(t *testing.T) {
	tests := []struct {
		name string
		key  string
		iv   string
	}{
		{name: "short key", key: "tooshort", iv: testHashIV},
		{name: "long key", key: testHashKey + "x", iv: testHashIV},
		{name: "short iv", key: testHashKey, iv: "short"},
		{name: "long iv", key: testHashKey, iv: testHashIV + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCipher(tt.key, tt.iv).Encrypt(orderParams())
			require.Error(t, err)
			assert.True(t, gwerrors.HasCode(err, gwerrors.CodeEncryption))
		})
	}
}

func Test_Cipher_DecryptRejectsMalformedInput(t *testing.T) {
	c := NewCipher(testHashKey, testHashIV)

	tests := []struct {
		name      string
		tradeInfo string
	}{
		{name: "not hex", tradeInfo: "zz not hex zz"},
		{name: "odd length", tradeInfo: "abc"},
		{name: "empty", tradeInfo: ""},
		{name: "not block aligned", tradeInfo: "00ff00ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.tradeInfo)
			require.Error(t, err)
			assert.True(t, gwerrors.HasCode(err, gwerrors.CodeDecode))
		})
	}
}

func Test_Cipher_DecryptWithWrongKeyNeverYieldsOriginal(t *testing.T) {
	enc, err := NewCipher(testHashKey, testHashIV).Encrypt(orderParams())
	require.NoError(t, err)

	wrong := NewCipher("99999999999999999999999999999999", testHashIV)
	got, err := wrong.Decrypt(enc)
	if err != nil {
		assert.True(t, gwerrors.HasCode(err, gwerrors.CodeDecode))
		return
	}
	assert.NotEqual(t, "MS12345678", got["MerchantID"])
}
