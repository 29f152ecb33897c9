// Package envelope implements the gateway's secure payload envelope: an
// AES-256-CBC cipher over the canonical query-string form of a parameter
// set, and the SHA-256 integrity stamp (TradeSha) bound to the ciphertext.
//
// The gateway mandates a fixed, merchant-scoped IV, so encryption here is
// deterministic: identical parameters under the same credentials always
// produce identical ciphertext. That is a known weakness of deterministic
// CBC inherited from the wire protocol; randomizing the IV would break
// interoperability. The cipher mode also carries no authentication tag;
// the separate stamp covers the ciphertext bytes instead.
package envelope

import (
	aescipher "crypto/aes"
	"crypto/cipher"
	"encoding/hex"

	gwerrors "newebpay/pkg/errors"
)

// Cipher encrypts and decrypts TradeInfo blobs with a merchant's HashKey
// and HashIV. The key pair is immutable for the lifetime of the Cipher and
// is never logged or serialized.
type Cipher struct {
	key []byte
	iv  []byte
}

// NewCipher builds a Cipher from the merchant's HashKey (32 bytes) and
// HashIV (16 bytes). Sizes are validated when the cipher is first used.
func NewCipher(hashKey, hashIV string) *Cipher {
	return &Cipher{key: []byte(hashKey), iv: []byte(hashIV)}
}

// Encrypt serializes params into the canonical query-string form, encrypts
// it with AES-256-CBC and PKCS#7 padding, and returns the ciphertext as a
// lower-case hex string.
func (c *Cipher) Encrypt(params *Params) (string, error) {
	block, err := aescipher.NewCipher(c.key)
	if err != nil {
		return "", gwerrors.Wrap(gwerrors.CodeEncryption, "invalid AES key length", err)
	}
	if len(c.iv) != block.BlockSize() {
		return "", gwerrors.Newf(gwerrors.CodeEncryption, "IV must be %d bytes, got %d", block.BlockSize(), len(c.iv))
	}

	plain := pkcs7Pad([]byte(params.Encode()), block.BlockSize())
	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(out, plain)

	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt: hex-decode, AES-256-CBC decrypt, strip padding,
// and parse the canonical form back into a map. Parsing is permissive: the
// protocol gives decryption no way to authenticate structure, so callers
// rely on the integrity stamp checked beforehand.
func (c *Cipher) Decrypt(tradeInfo string) (map[string]any, error) {
	raw, err := hex.DecodeString(tradeInfo)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.CodeDecode, "TradeInfo is not valid hex", err)
	}

	block, err := aescipher.NewCipher(c.key)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.CodeDecode, "invalid AES key length", err)
	}
	if len(c.iv) != block.BlockSize() {
		return nil, gwerrors.Newf(gwerrors.CodeDecode, "IV must be %d bytes, got %d", block.BlockSize(), len(c.iv))
	}
	if len(raw) == 0 || len(raw)%block.BlockSize() != 0 {
		return nil, gwerrors.New(gwerrors.CodeDecode, "TradeInfo length is not a whole number of cipher blocks")
	}

	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, c.iv).CryptBlocks(plain, raw)

	plain, err = pkcs7Unpad(plain, block.BlockSize())
	if err != nil {
		return nil, err
	}

	return ParseEncoded(string(plain)), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, gwerrors.New(gwerrors.CodeDecode, "ciphertext is not block aligned")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, gwerrors.New(gwerrors.CodeDecode, "invalid PKCS#7 padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, gwerrors.New(gwerrors.CodeDecode, "invalid PKCS#7 padding")
		}
	}
	return data[:len(data)-n], nil
}
