package params

// BankType selects the issuing bank for ATM virtual-account payments.
type BankType string

const (
	// BankBOT is Bank of Taiwan.
	BankBOT BankType = "BOT"
	// BankHNCB is Hua Nan Commercial Bank.
	BankHNCB BankType = "HNCB"
	// BankFirst is First Commercial Bank.
	BankFirst BankType = "FIRST"
)

// BankTypes lists the banks the ATM variant accepts.
func BankTypes() []BankType {
	return []BankType{BankBOT, BankHNCB, BankFirst}
}

// Valid reports whether b is one of the accepted bank codes.
func (b BankType) Valid() bool {
	switch b {
	case BankBOT, BankHNCB, BankFirst:
		return true
	}
	return false
}

// String returns the wire value.
func (b BankType) String() string {
	return string(b)
}
