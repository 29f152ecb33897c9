package envelope

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered set of wire parameters. Keys are the vendor-defined
// field names and are case-sensitive. Insertion order is preserved so that
// encoding is reproducible; the gateway itself does not care about order.
//
// Values may be strings, integers, booleans (encoded as 1/0) or a nested
// *Params, which encodes with the bracket form the gateway uses for its
// Result sub-object (Result[MerchantOrderNo]=... before escaping).
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set stores value under key, appending the key if it is new.
func (p *Params) Set(key string, value any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key if present.
func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored keys.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Clone returns a copy preserving insertion order. Nested bags are cloned
// too, so mutating the copy never reaches the original.
func (p *Params) Clone() *Params {
	out := NewParams()
	for _, k := range p.keys {
		v := p.values[k]
		if sub, ok := v.(*Params); ok {
			v = sub.Clone()
		}
		out.Set(k, v)
	}
	return out
}

// Filtered returns a copy without empty-string or nil values. The gateway
// requires omitted optional fields to be indistinguishable from fields that
// were never set, so blanks are dropped before encoding rather than encoded
// as empty.
func (p *Params) Filtered() *Params {
	out := NewParams()
	for _, k := range p.keys {
		v := p.values[k]
		if v == nil || v == "" {
			continue
		}
		if sub, ok := v.(*Params); ok && sub.Len() == 0 {
			continue
		}
		out.Set(k, v)
	}
	return out
}

// Encode serializes the parameters as an RFC 1738 style query string in
// insertion order, matching the canonical form the gateway decrypts against.
func (p *Params) Encode() string {
	var b strings.Builder
	for _, k := range p.keys {
		switch v := p.values[k].(type) {
		case *Params:
			for _, sub := range v.keys {
				appendPair(&b, k+"["+sub+"]", formatValue(v.values[sub]))
			}
		default:
			appendPair(&b, k, formatValue(v))
		}
	}
	return b.String()
}

func appendPair(b *strings.Builder, key, value string) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(url.QueryEscape(key))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// ParseEncoded is the permissive inverse of Encode. It never fails: pairs
// that do not parse are skipped, pairs without '=' become empty-string
// values, and one level of bracket nesting is folded back into a nested
// map. Values always come back as strings.
func ParseEncoded(encoded string) map[string]any {
	parsed, _ := url.ParseQuery(encoded)

	out := make(map[string]any, len(parsed))
	for key, vals := range parsed {
		value := ""
		if len(vals) > 0 {
			value = vals[len(vals)-1]
		}
		name, sub, nested := splitBracketKey(key)
		if !nested {
			out[key] = value
			continue
		}
		m, ok := out[name].(map[string]string)
		if !ok {
			m = make(map[string]string)
			out[name] = m
		}
		m[sub] = value
	}
	return out
}

// splitBracketKey splits "Result[TradeNo]" into ("Result", "TradeNo", true).
func splitBracketKey(key string) (name, sub string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}
