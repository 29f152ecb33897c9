package query

import (
	"encoding/json"

	gwerrors "newebpay/pkg/errors"
)

// ParseResponse decodes a gateway JSON response body. A Status other than
// SUCCESS becomes a gateway error carrying the status code and message; on
// success the Result object is returned.
func ParseResponse(body []byte) (map[string]any, error) {
	var resp struct {
		Status  string          `json:"Status"`
		Message string          `json:"Message"`
		Result  json.RawMessage `json:"Result"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, gwerrors.Wrap(gwerrors.CodeDecode, "malformed gateway response", err)
	}
	if resp.Status != "SUCCESS" {
		return nil, gwerrors.Newf(gwerrors.CodeGateway, "[%s] %s", resp.Status, resp.Message)
	}

	result := map[string]any{}
	if len(resp.Result) > 0 {
		// Some endpoints return an empty array instead of an object; keep
		// the permissive read rather than failing the whole response.
		_ = json.Unmarshal(resp.Result, &result)
	}
	return result, nil
}
