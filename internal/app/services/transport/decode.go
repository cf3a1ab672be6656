package transport

import (
	"medifax-client/internal/pkg/dto/responses"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Decode turns a 2xx answer into T and checks it against the validate tags of
// T. An empty answer gives (nil, nil).
func Decode[T any](raw *responses.RawResponse, resource string) (*T, error) {
	if raw.IsEmpty() {
		return nil, nil
	}

	var out T
	err := json.Unmarshal(raw.Body, &out)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}

	err = utils.ValidateStruct(&out)
	if err != nil {
		return nil, exceptions.ErrResponseSchema(err, resource)
	}
	return &out, nil
}

// DecodeList accepts a plain JSON array as well as a hydra collection.
func DecodeList[T any](raw *responses.RawResponse, resource string) ([]T, error) {
	if raw.IsEmpty() {
		return []T{}, nil
	}

	body := raw.Body
	if member := gjson.GetBytes(body, "hydra:member"); member.IsArray() {
		body = []byte(member.Raw)
	} else if member := gjson.GetBytes(body, "member"); member.IsArray() {
		body = []byte(member.Raw)
	}

	var out []T
	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}

	for i := range out {
		err = utils.ValidateStruct(&out[i])
		if err != nil {
			return nil, exceptions.ErrResponseSchema(err, resource)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
