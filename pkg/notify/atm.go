package notify

// ATM virtual-account callbacks carry the assigned account and its deadline
// in the result object.

// BankCode returns the bank that issued the virtual account.
func (h *Handler) BankCode() string {
	return h.resultString("BankCode")
}

// CodeNo returns the virtual account number (ATM) or payment code (CVS).
func (h *Handler) CodeNo() string {
	return h.resultString("CodeNo")
}

// ExpireDate returns the payment deadline date.
func (h *Handler) ExpireDate() string {
	return h.resultString("ExpireDate")
}

// ExpireTime returns the payment deadline time of day.
func (h *Handler) ExpireTime() string {
	return h.resultString("ExpireTime")
}
