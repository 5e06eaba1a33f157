// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewResponseID creates an identifier for a survey response: a unix
// millisecond prefix (time-sortable) joined with 48 bits of randomness.
// The prefix keeps IDs roughly ordered by submission time; the random
// suffix makes collisions within the same millisecond vanishingly
// unlikely.
func NewResponseID() (string, error) {
	suffix, err := GenerateID(6)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix, nil
}
