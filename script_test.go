// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"errors"
	"testing"

	"github.com/btclibs/btcaddr/chaincfg"
)

// TestFromPaymentScript ensures the recognized payment script templates
// resolve to addresses that encode and classify as expected.
func TestFromPaymentScript(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		params   *chaincfg.Params
		addr     string
		addrType AddressType
	}{{
		name:     "p2pkh",
		script:   "76a914162c5ea71c0b23f5b9022ef047c4a86470a5b07088ac",
		params:   &chaincfg.MainNetParams,
		addr:     "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM",
		addrType: AddressTypeP2PKH,
	}, {
		name:     "p2sh",
		script:   "a914162c5ea71c0b23f5b9022ef047c4a86470a5b07087",
		params:   &chaincfg.MainNetParams,
		addr:     "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k",
		addrType: AddressTypeP2SH,
	}, {
		name:     "p2wpkh",
		script:   "0014751e76e8199196d454941c45d1b3a323f1433bd6",
		params:   &chaincfg.MainNetParams,
		addr:     "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		addrType: AddressTypeP2WPKH,
	}, {
		name: "p2wsh",
		script: "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c632" +
			"9604903262",
		params:   &chaincfg.TestNet3Params,
		addr:     "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7",
		addrType: AddressTypeP2WSH,
	}, {
		name: "p2tr",
		script: "5120a60869f0dbcf1dc659c9cecbaf8050135ea9e8cdc487053f1dc688" +
			"0949dc684c",
		params:   &chaincfg.MainNetParams,
		addr:     "bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr",
		addrType: AddressTypeP2TR,
	}, {
		name:     "p2a",
		script:   "51024e73",
		params:   &chaincfg.RegressionNetParams,
		addr:     "bcrt1pfeesnyr2tx",
		addrType: AddressTypeP2A,
	}, {
		name:     "segwit v2",
		script:   "5210751e76e8199196d454941c45d1b3a323",
		params:   &chaincfg.MainNetParams,
		addr:     "bc1zw508d6qejxtdg4y5r3zarvaryvaxxpcs",
		addrType: AddressTypeNonStandard,
	}}

	for _, test := range tests {
		script := hexToBytes(test.script)
		addr, err := FromPaymentScript(script, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if s := addr.String(); s != test.addr {
			t.Errorf("%s: mismatched address: got %s, want %s", test.name, s,
				test.addr)
			continue
		}
		if addrType := addr.AddressType(); addrType != test.addrType {
			t.Errorf("%s: mismatched address type: got %v, want %v",
				test.name, addrType, test.addrType)
			continue
		}
		if !addr.MatchesPaymentScript(script) {
			t.Errorf("%s: address does not match its source script",
				test.name)
		}
	}
}

// TestFromPaymentScriptErrors ensures scripts outside the recognized
// templates are rejected with the expected error kind.
func TestFromPaymentScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		err    ErrorKind
	}{{
		name:   "empty script",
		script: "",
		err:    ErrUnrecognizedScript,
	}, {
		// A p2wpkh shape with a non-minimal extra opcode.
		name:   "p2wpkh with trailing opcode",
		script: "15000014dbc5b0a8f9d4353b4b54c3db48846bb15abfec",
		err:    ErrUnrecognizedScript,
	}, {
		// A p2wsh shape missing its final byte.
		name: "truncated p2wsh",
		script: "00202d4fa2eb233d008cc83206fa2f4f2e60199000f5b857a835e31723" +
			"233856",
		err: ErrUnrecognizedScript,
	}, {
		// Valid witness shape but the version mandates a different
		// program length.
		name:   "v0 witness program of 17 bytes",
		script: "001161458e330389cd0437ee9fe3641d70cc18",
		err:    ErrInvalidWitnessProgram,
	}, {
		// OP_RETURN data carrier.
		name:   "op_return",
		script: "6a0b68656c6c6f20776f726c64",
		err:    ErrUnrecognizedScript,
	}, {
		// Bare pubkey (pay-to-pubkey, not pay-to-pubkey-hash).
		name: "p2pk",
		script: "2103df154ebfcf29d29cc10d5c2565018bce2d9edbab267c31d2caf44a" +
			"63056cf99fac",
		err: ErrUnrecognizedScript,
	}}

	for _, test := range tests {
		_, err := FromPaymentScript(hexToBytes(test.script),
			&chaincfg.MainNetParams)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error: got %v, want %v", test.name, err,
				test.err)
		}
	}
}

// TestMatchesPaymentScript ensures the structural matcher accepts only the
// script generated by the address itself.
func TestMatchesPaymentScript(t *testing.T) {
	addrs := []string{
		"132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM",
		"33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k",
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7",
		"bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr",
		"bcrt1pfeesnyr2tx",
	}

	checked := make([]Address, 0, len(addrs))
	for _, addr := range addrs {
		unchecked, err := DecodeAddress(addr)
		if err != nil {
			t.Fatalf("%s: unexpected decode error: %v", addr, err)
		}
		checked = append(checked, unchecked.AssumeChecked())
	}

	for i, addr := range checked {
		for j, other := range checked {
			want := i == j
			if got := addr.MatchesPaymentScript(other.PaymentScript()); got !=
				want {

				t.Errorf("%s vs %s: mismatched result: got %v, want %v",
					addrs[i], addrs[j], got, want)
			}
		}

		// Never match a prefix or extension of the right script.
		script := addr.PaymentScript()
		if addr.MatchesPaymentScript(script[:len(script)-1]) {
			t.Errorf("%s: matched a truncated script", addrs[i])
		}
		if addr.MatchesPaymentScript(append(script, opZero)) {
			t.Errorf("%s: matched an extended script", addrs[i])
		}
	}
}

// TestWitnessVersionOps ensures the witness version to opcode mapping
// round trips across the full version range.
func TestWitnessVersionOps(t *testing.T) {
	for version := byte(0); version <= maxWitnessVersion; version++ {
		op := witnessVersionToOp(version)
		if version == 0 && op != opZero {
			t.Fatalf("mismatched opcode for version 0: got 0x%02x", op)
		}
		if version > 0 && (op < opOne || op > opSixteen) {
			t.Fatalf("opcode 0x%02x for version %d is not a small integer "+
				"push", op, version)
		}
		if back := witnessVersionFromOp(op); back != version {
			t.Fatalf("version %d round tripped to %d", version, back)
		}
	}
}
