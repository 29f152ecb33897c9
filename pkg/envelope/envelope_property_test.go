//go:build property
// +build property

// Property-based tests for the envelope round trip and the integrity stamp.
package envelope_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"newebpay/pkg/envelope"
)

const (
	propHashKey = "12345678901234567890123456789012"
	propHashIV  = "1234567890123456"
)

// TestEnvelopeRoundTrip verifies decrypt(encrypt(p)) restores every pair.
// Property: for any non-empty alphanumeric params p, Decrypt(Encrypt(p)) == p
func TestEnvelopeRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	c := envelope.NewCipher(propHashKey, propHashIV)

	properties.Property("encrypt then decrypt restores all pairs", prop.ForAll(
		func(keys []string, values []string) bool {
			p := envelope.NewParams()
			want := make(map[string]string)
			for i := 0; i < len(keys) && i < len(values); i++ {
				if keys[i] == "" || values[i] == "" {
					continue
				}
				p.Set(keys[i], values[i])
				want[keys[i]] = values[i]
			}
			if len(want) == 0 {
				return true
			}

			enc, err := c.Encrypt(p)
			if err != nil {
				return false
			}
			got, err := c.Decrypt(enc)
			if err != nil {
				return false
			}
			if len(got) != len(want) {
				return false
			}
			for k, v := range want {
				if got[k] != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// TestEnvelopeDeterminism verifies encryption of equal params is identical.
// Property: Encrypt(p) == Encrypt(p) under the same credentials
func TestEnvelopeDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	c := envelope.NewCipher(propHashKey, propHashIV)

	properties.Property("equal params encrypt to equal ciphertext", prop.ForAll(
		func(orderNo, desc string, amt int) bool {
			build := func() *envelope.Params {
				p := envelope.NewParams()
				p.Set("MerchantOrderNo", orderNo)
				p.Set("ItemDesc", desc)
				p.Set("Amt", amt)
				return p
			}

			first, err1 := c.Encrypt(build())
			second, err2 := c.Encrypt(build())
			if err1 != nil || err2 != nil {
				return false
			}
			return first == second
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(1, 1000000),
	))

	properties.TestingRun(t)
}

// TestStampRejectsTampering verifies any single-character mutation of the
// ciphertext hex fails verification.
func TestStampRejectsTampering(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	c := envelope.NewCipher(propHashKey, propHashIV)
	s := envelope.NewStamp(propHashKey, propHashIV)

	properties.Property("mutated ciphertext never verifies", prop.ForAll(
		func(orderNo string, pos int) bool {
			p := envelope.NewParams()
			p.Set("MerchantOrderNo", orderNo)
			p.Set("Amt", 100)

			enc, err := c.Encrypt(p)
			if err != nil {
				return false
			}
			sha := s.Generate(enc)
			if !s.Verify(enc, sha) {
				return false
			}

			i := pos % len(enc)
			flipped := byte('0')
			if enc[i] == '0' {
				flipped = '1'
			}
			mutated := enc[:i] + string(flipped) + enc[i+1:]
			return !s.Verify(mutated, sha)
		},
		gen.AlphaString(),
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}
