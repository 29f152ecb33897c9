package payment

import (
	gwerrors "newebpay/pkg/errors"
)

// MethodSpec describes one payment method as data: the flags it turns on at
// init, its amount window, and any extra build-time validation. Variants are
// method specs over one Request type rather than a type hierarchy.
type MethodSpec struct {
	Name      string
	InitFlags []string

	// MinAmount/MaxAmount bound the order amount inclusively. Zero means
	// no bound beyond "strictly positive".
	MinAmount int
	MaxAmount int

	// Validate runs after the shared cross-field checks at build time.
	Validate func(r *Request) error
}

func (s MethodSpec) checkAmount(amount int) error {
	if amount <= 0 {
		return gwerrors.Invalid("Amt", "amount must be positive")
	}
	if s.MinAmount > 0 && amount < s.MinAmount {
		return gwerrors.Newf(gwerrors.CodeValidation,
			"field Amt has an invalid value: %s amount must be between %d and %d", s.Name, s.MinAmount, s.MaxAmount)
	}
	if s.MaxAmount > 0 && amount > s.MaxAmount {
		return gwerrors.Newf(gwerrors.CodeValidation,
			"field Amt has an invalid value: %s amount must be between %d and %d", s.Name, s.MinAmount, s.MaxAmount)
	}
	return nil
}

// methodFlags are the wire fields that enable a payment method. The
// all-methods variant requires at least one of them to be on at build time.
var methodFlags = []string{
	"CREDIT", "WEBATM", "VACC", "CVS", "BARCODE",
	"LINEPAY", "TAIWANPAY", "ESUNWALLET", "BITOPAY", "CVSCOM",
}

func flagEnabled(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case int:
		return t != 0
	case int64:
		return t != 0
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	default:
		return true
	}
}

func creditSpec() MethodSpec {
	return MethodSpec{Name: "credit", InitFlags: []string{"CREDIT"}}
}

func creditInstallmentSpec() MethodSpec {
	return MethodSpec{
		Name:      "credit-installment",
		InitFlags: []string{"CREDIT"},
		Validate: func(r *Request) error {
			if v, ok := r.params.Get("InstFlag"); !ok || v == "" {
				return gwerrors.Required("InstFlag")
			}
			return nil
		},
	}
}

func webATMSpec() MethodSpec {
	return MethodSpec{Name: "webatm", InitFlags: []string{"WEBATM"}}
}

func atmSpec() MethodSpec {
	return MethodSpec{Name: "atm", InitFlags: []string{"VACC"}}
}

func cvsSpec() MethodSpec {
	return MethodSpec{Name: "cvs", InitFlags: []string{"CVS"}, MinAmount: 30, MaxAmount: 20000}
}

func barcodeSpec() MethodSpec {
	return MethodSpec{Name: "barcode", InitFlags: []string{"BARCODE"}, MinAmount: 20, MaxAmount: 40000}
}

func cvscomSpec() MethodSpec {
	return MethodSpec{
		Name:      "cvscom",
		InitFlags: []string{"CVSCOM"},
		MinAmount: 30,
		MaxAmount: 20000,
		Validate: func(r *Request) error {
			if v, ok := r.params.Get("LgsType"); !ok || v == "" {
				return gwerrors.Required("LgsType")
			}
			return nil
		},
	}
}

func linePaySpec() MethodSpec {
	return MethodSpec{Name: "linepay", InitFlags: []string{"LINEPAY"}}
}

func esunWalletSpec() MethodSpec {
	return MethodSpec{Name: "esunwallet", InitFlags: []string{"ESUNWALLET"}}
}

func taiwanPaySpec() MethodSpec {
	return MethodSpec{Name: "taiwanpay", InitFlags: []string{"TAIWANPAY"}}
}

func bitoPaySpec() MethodSpec {
	return MethodSpec{Name: "bitopay", InitFlags: []string{"BITOPAY"}}
}

func twqrSpec() MethodSpec {
	return MethodSpec{Name: "twqr", InitFlags: []string{"TWQR"}}
}

func fulaSpec() MethodSpec {
	return MethodSpec{Name: "fula", InitFlags: []string{"FULA"}}
}

func allInOneSpec() MethodSpec {
	return MethodSpec{
		Name: "all-in-one",
		Validate: func(r *Request) error {
			for _, flag := range methodFlags {
				if v, ok := r.params.Get(flag); ok && flagEnabled(v) {
					return nil
				}
			}
			return gwerrors.Invalid("PaymentMethod", "at least one payment method must be enabled")
		},
	}
}
