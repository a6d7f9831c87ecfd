// Package liqpay implements the LiqPay checkout envelope: base64 JSON data
// signed with base64(sha1(private_key + data + private_key)).
package liqpay

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is returned when an envelope is not valid base64 JSON
var ErrDecode = errors.New("liqpay: malformed data")

// Encode serializes payload to JSON and base64-encodes it
func Encode(payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("liqpay: failed to marshal payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Sign computes the gateway signature for already encoded data.
// The secret is both prepended and appended; this is not HMAC.
func Sign(secret, data string) string {
	h := sha1.New()
	h.Write([]byte(secret))
	h.Write([]byte(data))
	h.Write([]byte(secret))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature matches data under secret
func Verify(secret, data, signature string) bool {
	expected := []byte(Sign(secret, data))
	return subtle.ConstantTimeCompare(expected, []byte(signature)) == 1
}

// Decode base64-decodes data and unmarshals the JSON into v
func Decode(data string, v interface{}) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
