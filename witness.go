// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"fmt"
)

const (
	// minWitnessProgramLen is the minimum number of bytes in a witness
	// program per BIP141.
	minWitnessProgramLen = 2

	// maxWitnessProgramLen is the maximum number of bytes in a witness
	// program per BIP141.
	maxWitnessProgramLen = 40

	// maxWitnessVersion is the maximum supported witness version.
	maxWitnessVersion = 16
)

// anchorProgram is the witness version 1 program of the pay-to-anchor output
// defined by Bitcoin Core ("an" in bech32 data symbols).
var anchorProgram = [2]byte{0x4e, 0x73}

// WitnessProgram represents a validity-checked segwit witness program: a
// witness version between 0 and 16 along with 2 to 40 program bytes.
//
// The length constraints for the version are enforced at construction and
// never re-validated, so holders of a WitnessProgram value may rely on them.
// The zero value is not a valid witness program; values must be obtained from
// NewWitnessProgram or from an Address query.
type WitnessProgram struct {
	version    byte
	programLen uint8
	program    [maxWitnessProgramLen]byte
}

// NewWitnessProgram returns a new witness program for the provided version
// and program bytes.
//
// The version must be between 0 and 16, the program must be between 2 and 40
// bytes, and version 0 programs must be exactly 20 or 32 bytes per BIP141.
func NewWitnessProgram(version byte, program []byte) (WitnessProgram, error) {
	if version > maxWitnessVersion {
		str := fmt.Sprintf("witness version %d is greater than max allowed %d",
			version, maxWitnessVersion)
		return WitnessProgram{}, makeError(ErrInvalidWitnessVersion, str)
	}
	if len(program) < minWitnessProgramLen ||
		len(program) > maxWitnessProgramLen {

		str := fmt.Sprintf("witness program length %d is outside allowed "+
			"range [%d, %d]", len(program), minWitnessProgramLen,
			maxWitnessProgramLen)
		return WitnessProgram{}, makeError(ErrInvalidWitnessProgram, str)
	}

	// Version 0 programs are restricted to the pay-to-witness-pubkey-hash
	// and pay-to-witness-script-hash lengths per BIP141.
	if version == 0 && len(program) != 20 && len(program) != 32 {
		str := fmt.Sprintf("witness program length %d is not 20 or 32 for "+
			"witness version 0", len(program))
		return WitnessProgram{}, makeError(ErrInvalidWitnessProgram, str)
	}

	wp := WitnessProgram{
		version:    version,
		programLen: uint8(len(program)),
	}
	copy(wp.program[:], program)
	return wp, nil
}

// Version returns the witness version of the program.
func (wp WitnessProgram) Version() byte {
	return wp.version
}

// Program returns the raw witness program bytes.  The returned slice is a
// copy and may be modified by the caller.
func (wp WitnessProgram) Program() []byte {
	program := make([]byte, wp.programLen)
	copy(program, wp.program[:wp.programLen])
	return program
}

// IsP2WPKH returns whether or not the witness program is the
// pay-to-witness-pubkey-hash shape (version 0, 20-byte program).
func (wp WitnessProgram) IsP2WPKH() bool {
	return wp.version == 0 && wp.programLen == 20
}

// IsP2WSH returns whether or not the witness program is the
// pay-to-witness-script-hash shape (version 0, 32-byte program).
func (wp WitnessProgram) IsP2WSH() bool {
	return wp.version == 0 && wp.programLen == 32
}

// IsP2TR returns whether or not the witness program is the pay-to-taproot
// shape (version 1, 32-byte program).
func (wp WitnessProgram) IsP2TR() bool {
	return wp.version == 1 && wp.programLen == 32
}

// IsP2A returns whether or not the witness program is the fixed
// pay-to-anchor program (version 1, the 2-byte program 0x4e73).
func (wp WitnessProgram) IsP2A() bool {
	return wp.version == 1 && wp.programLen == 2 &&
		wp.program[0] == anchorProgram[0] &&
		wp.program[1] == anchorProgram[1]
}

// String returns the witness program in a human-readable form for debugging.
func (wp WitnessProgram) String() string {
	return fmt.Sprintf("v%d:%x", wp.version, wp.program[:wp.programLen])
}
