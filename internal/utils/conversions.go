package utils

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeValues serializes a payload sequence into a msgpack array
func EncodeValues(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	data, err := msgpack.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode values: %w", err)
	}
	return data, nil
}

// DecodeValues deserializes a msgpack array back into a payload sequence
func DecodeValues(data []byte) ([]string, error) {
	var values []string
	if err := msgpack.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	return values, nil
}
