// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

// Visibility tells the UI which controls to render.
//
// It is cosmetic only. The request checkpoint decides what the store
// accepts; a client that ignores this still gets a 401 on mutation.
type Visibility struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	CanEdit         bool `json:"canEdit"`
}

// ViewVisibility maps an authority token onto UI capabilities.
func ViewVisibility(token AuthorityToken) Visibility {
	return Visibility{
		IsAuthenticated: token.Present(),
		CanEdit:         token.Present(),
	}
}
