package notify

// Convenience-store code and barcode callbacks.

// StoreType returns the convenience-store chain handling the payment.
func (h *Handler) StoreType() string {
	return h.resultString("StoreType")
}

// Barcode1 returns the first barcode segment.
func (h *Handler) Barcode1() string {
	return h.resultString("Barcode_1")
}

// Barcode2 returns the second barcode segment.
func (h *Handler) Barcode2() string {
	return h.resultString("Barcode_2")
}

// Barcode3 returns the third barcode segment.
func (h *Handler) Barcode3() string {
	return h.resultString("Barcode_3")
}
