package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// JWTPayload decodes the unsigned payload segment of a JWT.
// ok is false for opaque tokens.
func JWTPayload(token string) (payload string, ok bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}
	p, err := decodeB64URL(parts[1])
	if err != nil {
		return "", false
	}
	return p, true
}

func decodeB64URL(s string) (string, error) {
	dec, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		dec2, err2 := base64.URLEncoding.DecodeString(s)
		if err2 != nil {
			return "", err
		}
		return string(dec2), nil
	}
	return string(dec), nil
}

// JWTExpiry returns the exp claim of a decoded payload, or nil.
func JWTExpiry(payload string) *time.Time {
	var claims struct {
		Exp json.Number `json:"exp"`
	}
	if err := json.Unmarshal([]byte(payload), &claims); err != nil || claims.Exp == "" {
		return nil
	}
	sec, err := claims.Exp.Int64()
	if err != nil {
		return nil
	}
	t := time.Unix(sec, 0)
	return &t
}
