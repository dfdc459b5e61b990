/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "strings"

// entry pairs a lowercase lookup key with its payload. Tables of entries
// are ordered: when several keys occur in a name, the earliest entry wins
// (for example "cholesterol" before "ldl" in "LDL Cholesterol").
type entry[T any] struct {
	key     string
	payload T
}

// firstMatch returns the payload of the first entry whose key is a
// substring of the lowercased name.
func firstMatch[T any](name string, table []entry[T]) (T, string, bool) {
	lower := strings.ToLower(name)

	for _, e := range table {
		if strings.Contains(lower, e.key) {
			return e.payload, e.key, true
		}
	}

	var zero T

	return zero, "", false
}
