package responses

import "bytes"

// RawResponse is what the transport hands back for a 2xx answer, before any
// decoding into typed DTOs.
type RawResponse struct {
	Endpoint   string
	StatusCode int
	Body       []byte
}

// IsEmpty reports a valid but empty backend answer: 204, an empty body or a
// literal JSON null.
func (r *RawResponse) IsEmpty() bool {
	if r == nil || r.StatusCode == 204 {
		return true
	}
	trimmed := bytes.TrimSpace(r.Body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
