// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrDataNotArray = errors.New("data must be an array")

// DecodeTokens turns the raw "data" field into string tokens.
// Non-string elements keep their JSON text: 5 -> "5", true -> "true",
// null -> "null", objects and arrays -> compact JSON.
func DecodeTokens(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrDataNotArray
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataNotArray, err)
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		token, err := tokenString(item)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

func tokenString(item interface{}) (string, error) {
	switch v := item.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "null", nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to stringify data element: %w", err)
		}
		return string(b), nil
	}
}
