package config

import "os"

// Environment selects which gateway host the transport layer talks to. The
// core library never dials it; the value exists so callers and the callback
// receiver agree on one switch instead of a per-object test flag.
type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

// BaseURL returns the gateway origin for this environment.
func (e Environment) BaseURL() string {
	if e == Sandbox {
		return "https://ccore.newebpay.com"
	}
	return "https://core.newebpay.com"
}

// Server captures the callback receiver configuration.
type Server struct {
	Addr        string
	MerchantID  string
	HashKey     string
	HashIV      string
	Environment Environment
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("NEWEBPAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := Production
	if os.Getenv("NEWEBPAY_SANDBOX") == "true" {
		env = Sandbox
	}

	return Server{
		Addr:        addr,
		MerchantID:  os.Getenv("NEWEBPAY_MERCHANT_ID"),
		HashKey:     os.Getenv("NEWEBPAY_HASH_KEY"),
		HashIV:      os.Getenv("NEWEBPAY_HASH_IV"),
		Environment: env,
	}
}
