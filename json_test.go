// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/btclibs/btcaddr/chaincfg"
)

// TestTextMarshalRoundTrip ensures addresses of both validation states
// serialize as plain strings and deserialize back into the unchecked state.
func TestTextMarshalRoundTrip(t *testing.T) {
	addrs := []string{
		"132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM",
		"2N83imGV3gPwBzKJQvWJ7cRUY2SpUyU6A5e",
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		"bcrt1pfeesnyr2tx",
		"bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr",
	}

	for _, addr := range addrs {
		unchecked, err := DecodeAddress(addr)
		if err != nil {
			t.Errorf("%s: unexpected decode error: %v", addr, err)
			continue
		}

		// The unchecked state serializes as the plain encoding, without
		// the display wrapper.
		encoded, err := json.Marshal(unchecked)
		if err != nil {
			t.Errorf("%s: unexpected marshal error: %v", addr, err)
			continue
		}
		if want := `"` + addr + `"`; string(encoded) != want {
			t.Errorf("%s: mismatched unchecked encoding: got %s, want %s",
				addr, encoded, want)
			continue
		}

		// The checked state serializes identically; the validation state
		// is not part of the wire format.
		checkedEncoded, err := json.Marshal(unchecked.AssumeChecked())
		if err != nil {
			t.Errorf("%s: unexpected marshal error: %v", addr, err)
			continue
		}
		if string(checkedEncoded) != string(encoded) {
			t.Errorf("%s: checked and unchecked encodings differ: %s vs %s",
				addr, checkedEncoded, encoded)
			continue
		}

		var decoded UncheckedAddress
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			t.Errorf("%s: unexpected unmarshal error: %v", addr, err)
			continue
		}
		if decoded != unchecked {
			t.Errorf("%s: address did not round trip", addr)
		}
	}
}

// TestTextUnmarshalErrors ensures malformed serialized addresses are
// rejected with the decoder's error.
func TestTextUnmarshalErrors(t *testing.T) {
	var decoded UncheckedAddress
	err := json.Unmarshal([]byte(`"132F25rTsvBdp9JzLLBHP5mvGY66i1xdiN"`),
		&decoded)
	if !errors.Is(err, ErrBase58Decode) {
		t.Fatalf("mismatched error: got %v, want %v", err, ErrBase58Decode)
	}

	err = json.Unmarshal([]byte(`"foo1qqqqq"`), &decoded)
	if !errors.Is(err, ErrUnknownHrp) {
		t.Fatalf("mismatched error: got %v, want %v", err, ErrUnknownHrp)
	}
}

// TestJSONStructField ensures addresses embed naturally in larger JSON
// documents.
func TestJSONStructField(t *testing.T) {
	type payout struct {
		Amount  int64            `json:"amount"`
		Address UncheckedAddress `json:"address"`
	}

	const doc = `{"amount":5000,"address":"bcrt1pfeesnyr2tx"}`
	var p payout
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if p.Amount != 5000 {
		t.Fatalf("mismatched amount: got %d", p.Amount)
	}
	addr, err := p.Address.RequireNetwork(&chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("unexpected network validation error: %v", err)
	}
	if addrType := addr.AddressType(); addrType != AddressTypeP2A {
		t.Fatalf("mismatched address type: got %v", addrType)
	}

	encoded, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if string(encoded) != doc {
		t.Fatalf("mismatched document: got %s, want %s", encoded, doc)
	}
}
