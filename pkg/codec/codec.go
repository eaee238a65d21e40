// Package codec is the JSON codec shared by the extractors and the transports.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodePayload serializes a value to JSON bytes.
func EncodePayload(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// DecodePayload deserializes JSON bytes into the given target.
func DecodePayload(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// DecodeStrict is DecodePayload that also fails on keys the target does not
// declare.
func DecodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Restructure decodes src into dst by matching field names to keys, the way a
// JSON round trip would. It is how flat string-keyed maps become typed values.
func Restructure(src interface{}, dst interface{}) error {
	data, err := EncodePayload(src)
	if err != nil {
		return fmt.Errorf("encode source: %w", err)
	}
	return DecodePayload(data, dst)
}
