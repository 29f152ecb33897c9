package params

// TradeStatus is the numeric order state returned by the trade query API.
type TradeStatus int

const (
	TradeFailed     TradeStatus = 0
	TradeSuccess    TradeStatus = 1
	TradePending    TradeStatus = 2
	TradeCancelled  TradeStatus = 3
	TradeProcessing TradeStatus = 6
)

// IsSuccess reports whether the trade completed successfully.
func (s TradeStatus) IsSuccess() bool {
	return s == TradeSuccess
}

// IsPending reports whether the trade is awaiting payment.
func (s TradeStatus) IsPending() bool {
	return s == TradePending
}

// IsFailed reports whether payment failed.
func (s TradeStatus) IsFailed() bool {
	return s == TradeFailed
}

// Description returns a human-readable label for logs and admin tooling.
func (s TradeStatus) Description() string {
	switch s {
	case TradeSuccess:
		return "paid"
	case TradeFailed:
		return "payment failed"
	case TradePending:
		return "awaiting payment"
	case TradeCancelled:
		return "cancelled"
	case TradeProcessing:
		return "processing"
	default:
		return "unknown"
	}
}
