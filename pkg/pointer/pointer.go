// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer has generic helpers for the optional (*T) fields used
// throughout the catalog models.
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}
