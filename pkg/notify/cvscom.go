package notify

// Store-pickup (logistics) callbacks.

// StoreID returns the pickup store identifier.
func (h *Handler) StoreID() string {
	return h.resultString("StoreID")
}

// CVSNo returns the logistics shipment number.
func (h *Handler) CVSNo() string {
	return h.resultString("CVSNo")
}

// ReceiverName returns the pickup recipient's name.
func (h *Handler) ReceiverName() string {
	return h.resultString("ReceiverName")
}

// ReceiverPhone returns the pickup recipient's phone number.
func (h *Handler) ReceiverPhone() string {
	return h.resultString("ReceiverPhone")
}

// ReceiverAddress returns the pickup store address.
func (h *Handler) ReceiverAddress() string {
	return h.resultString("ReceiverAddress")
}
