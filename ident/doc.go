// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates opaque poll identifiers.

# Poll IDs

	id, err := ident.NewPollID() // e.g. "k3f9x2ab"

IDs are 8 characters drawn uniformly from lowercase letters and digits
using crypto/rand. Uniqueness is not guaranteed here; store.Create fails
with ErrExists on a collision and the create handler retries with a
fresh ID.
*/
package ident
