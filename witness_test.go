// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"bytes"
	"errors"
	"testing"
)

// TestNewWitnessProgram ensures the witness program constructor enforces
// the version range and the per-version program length constraints.
func TestNewWitnessProgram(t *testing.T) {
	tests := []struct {
		name       string
		version    byte
		programLen int
		err        ErrorKind
	}{{
		name:       "v0 p2wpkh length",
		version:    0,
		programLen: 20,
	}, {
		name:       "v0 p2wsh length",
		version:    0,
		programLen: 32,
	}, {
		name:       "v0 other length",
		version:    0,
		programLen: 25,
		err:        ErrInvalidWitnessProgram,
	}, {
		name:       "v1 minimum length",
		version:    1,
		programLen: 2,
	}, {
		name:       "v1 below minimum",
		version:    1,
		programLen: 1,
		err:        ErrInvalidWitnessProgram,
	}, {
		name:       "v1 above maximum",
		version:    1,
		programLen: 41,
		err:        ErrInvalidWitnessProgram,
	}, {
		name:       "v16 maximum length",
		version:    16,
		programLen: 40,
	}, {
		name:       "version above maximum",
		version:    17,
		programLen: 32,
		err:        ErrInvalidWitnessVersion,
	}}

	for _, test := range tests {
		program := bytes.Repeat([]byte{0xaa}, test.programLen)
		wp, err := NewWitnessProgram(test.version, program)
		if test.err != "" {
			if !errors.Is(err, test.err) {
				t.Errorf("%s: mismatched error: got %v, want %v", test.name,
					err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		if version := wp.Version(); version != test.version {
			t.Errorf("%s: mismatched version: got %d, want %d", test.name,
				version, test.version)
		}
		if got := wp.Program(); !bytes.Equal(got, program) {
			t.Errorf("%s: mismatched program: got %x, want %x", test.name,
				got, program)
		}
	}
}

// TestWitnessProgramOwnership ensures a witness program neither aliases the
// slice it was constructed from nor the slices it returns.
func TestWitnessProgramOwnership(t *testing.T) {
	input := bytes.Repeat([]byte{0x11}, 20)
	wp, err := NewWitnessProgram(0, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input[0] = 0xff
	if got := wp.Program(); got[0] != 0x11 {
		t.Fatal("witness program aliases the constructor input")
	}

	returned := wp.Program()
	returned[0] = 0xff
	if got := wp.Program(); got[0] != 0x11 {
		t.Fatal("witness program aliases its returned program")
	}
}

// TestWitnessProgramClassify ensures the shape classifiers recognize
// exactly their own shape.
func TestWitnessProgramClassify(t *testing.T) {
	mustProgram := func(version byte, program []byte) WitnessProgram {
		wp, err := NewWitnessProgram(version, program)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return wp
	}

	p2wpkh := mustProgram(0, make([]byte, 20))
	p2wsh := mustProgram(0, make([]byte, 32))
	p2tr := mustProgram(1, make([]byte, 32))
	p2a := mustProgram(1, anchorProgram[:])
	future := mustProgram(2, make([]byte, 20))
	v1Odd := mustProgram(1, make([]byte, 2))

	if !p2wpkh.IsP2WPKH() || p2wpkh.IsP2WSH() || p2wpkh.IsP2TR() ||
		p2wpkh.IsP2A() {

		t.Errorf("mismatched classification for %s", p2wpkh)
	}
	if !p2wsh.IsP2WSH() || p2wsh.IsP2WPKH() || p2wsh.IsP2TR() {
		t.Errorf("mismatched classification for %s", p2wsh)
	}
	if !p2tr.IsP2TR() || p2tr.IsP2WSH() || p2tr.IsP2A() {
		t.Errorf("mismatched classification for %s", p2tr)
	}
	if !p2a.IsP2A() || p2a.IsP2TR() {
		t.Errorf("mismatched classification for %s", p2a)
	}
	if future.IsP2WPKH() || future.IsP2TR() || future.IsP2A() {
		t.Errorf("mismatched classification for %s", future)
	}

	// A 2-byte v1 program that is not the anchor program is nothing.
	if v1Odd.IsP2A() || v1Odd.IsP2TR() {
		t.Errorf("mismatched classification for %s", v1Odd)
	}

	if s := p2a.String(); s != "v1:4e73" {
		t.Errorf("mismatched string form: got %s", s)
	}
}
