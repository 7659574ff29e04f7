package rpc

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bytedance/sonic"
)

// ErrEmptyPayload is returned when there is nothing to decode.
var ErrEmptyPayload = errors.New("empty payload")

var codec = sonic.ConfigStd

// Encode serialises v as JSON.
func Encode(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Decode parses data into v. Besides plain JSON it accepts a value wrapped in
// exactly one extra layer of JSON string quoting: for a string target
// "\"tok\"" yields tok, and for any other target a JSON string holding the
// encoded value is unquoted once. A second layer is never removed.
//
// *any and *json.RawMessage targets accept every JSON value, so for them a
// quoted payload is unquoted only when the inner text is a JSON object or
// array; any other string stays a string.
func Decode(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrEmptyPayload
	}

	switch target := v.(type) {
	case *string:
		return decodeString(data, target)
	case *any, *json.RawMessage:
		return decodeDynamic(data, target)
	}

	err := codec.Unmarshal(data, v)
	if err == nil || data[0] != '"' {
		return err
	}

	var inner string
	if codec.Unmarshal(data, &inner) != nil {
		return err
	}
	return codec.Unmarshal([]byte(inner), v)
}

func decodeString(data []byte, s *string) error {
	var outer string
	if err := codec.Unmarshal(data, &outer); err != nil {
		return err
	}

	var inner string
	if len(outer) > 1 && outer[0] == '"' && codec.Unmarshal([]byte(outer), &inner) == nil {
		*s = inner
		return nil
	}

	*s = outer
	return nil
}

func decodeDynamic(data []byte, v any) error {
	if data[0] == '"' {
		var inner string
		if err := codec.Unmarshal(data, &inner); err != nil {
			return err
		}
		if body := bytes.TrimSpace([]byte(inner)); isComposite(body) && codec.Unmarshal(body, v) == nil {
			return nil
		}
	}
	return codec.Unmarshal(data, v)
}

func isComposite(body []byte) bool {
	return len(body) > 0 && (body[0] == '{' || body[0] == '[')
}

// DecodeOr decodes data into a T, returning fallback if that fails.
func DecodeOr[T any](data []byte, fallback T) T {
	var v T
	if err := Decode(data, &v); err != nil {
		return fallback
	}
	return v
}
