// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// T is the subset of testing.TB the helpers need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireItemEqual fails the test unless got and want are structurally
// equal.
//
//	testutil.RequireItemEqual(t, decoded, rlp.List{rlp.Text("cat")})
func RequireItemEqual(t T, got, want rlp.Item) {
	t.Helper()
	if !rlp.Equal(got, want) {
		t.Fatalf("item mismatch:\n  got:  %s\n  want: %s", rlp.Format(got), rlp.Format(want))
	}
}

// RequireErrorKind fails the test unless err is an *rlp.Error of the
// given kind, and returns it for offset assertions.
//
//	decodeErr := testutil.RequireErrorKind(t, err, rlp.ErrMissingPayload)
//	if decodeErr.Offset != 1 { ... }
func RequireErrorKind(t T, err error, kind rlp.ErrorKind) *rlp.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", kind)
	}
	var codecErr *rlp.Error
	if !errors.As(err, &codecErr) {
		t.Fatalf("expected *rlp.Error of kind %v, got %T: %v", kind, err, err)
	}
	if codecErr.Kind != kind {
		t.Fatalf("error kind = %v, want %v (error: %v)", codecErr.Kind, kind, err)
	}
	return codecErr
}
