// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"bytes"
	"fmt"

	"github.com/btclibs/btcaddr/chaincfg"
)

// These constants are the script opcodes needed to build and recognize the
// standard payment script templates.
const (
	opZero        = 0x00 // OP_0
	opData20      = 0x14 // OP_DATA_20
	opOne         = 0x51 // OP_1
	opSixteen     = 0x60 // OP_16
	opDup         = 0x76 // OP_DUP
	opEqual       = 0x87 // OP_EQUAL
	opEqualVerify = 0x88 // OP_EQUALVERIFY
	opHash160     = 0xa9 // OP_HASH160
	opCheckSig    = 0xac // OP_CHECKSIG
)

const (
	// p2pkhPaymentScriptLen is the length of a standard
	// pay-to-pubkey-hash script.
	p2pkhPaymentScriptLen = 25

	// p2shPaymentScriptLen is the length of a standard
	// pay-to-script-hash script.
	p2shPaymentScriptLen = 23
)

// payToPubKeyHashScript returns the standard pay-to-pubkey-hash script for
// the provided hash:
//
//	DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
func payToPubKeyHashScript(hash [20]byte) []byte {
	var script [p2pkhPaymentScriptLen]byte
	script[0] = opDup
	script[1] = opHash160
	script[2] = opData20
	copy(script[3:23], hash[:])
	script[23] = opEqualVerify
	script[24] = opCheckSig
	return script[:]
}

// payToScriptHashScript returns the standard pay-to-script-hash script for
// the provided hash:
//
//	HASH160 <20-byte hash> EQUAL
func payToScriptHashScript(hash [20]byte) []byte {
	var script [p2shPaymentScriptLen]byte
	script[0] = opHash160
	script[1] = opData20
	copy(script[2:22], hash[:])
	script[22] = opEqual
	return script[:]
}

// witnessProgramScript returns the witness payment script for the provided
// version and program:
//
//	<version opcode> <push of 2-40 bytes>
//
// The program length must already be validated for the version.
func witnessProgramScript(version byte, program []byte) []byte {
	script := make([]byte, len(program)+2)
	script[0] = witnessVersionToOp(version)
	script[1] = byte(len(program))
	copy(script[2:], program)
	return script
}

// witnessVersionToOp converts a witness version to the small integer opcode
// that leads a witness payment script.
func witnessVersionToOp(version byte) byte {
	if version == 0 {
		return opZero
	}
	return opOne + version - 1
}

// isPayToPubKeyHashScript returns whether or not the provided script is a
// standard pay-to-pubkey-hash script.
func isPayToPubKeyHashScript(script []byte) bool {
	return len(script) == p2pkhPaymentScriptLen &&
		script[0] == opDup &&
		script[1] == opHash160 &&
		script[2] == opData20 &&
		script[23] == opEqualVerify &&
		script[24] == opCheckSig
}

// isPayToScriptHashScript returns whether or not the provided script is a
// standard pay-to-script-hash script.
func isPayToScriptHashScript(script []byte) bool {
	return len(script) == p2shPaymentScriptLen &&
		script[0] == opHash160 &&
		script[1] == opData20 &&
		script[22] == opEqual
}

// isWitnessProgramScript returns whether or not the provided script has the
// generic witness program shape: a version opcode followed by a single push
// of 2 through 40 bytes.  It does not validate the program length against
// the version; that is the witness program constructor's concern.
func isWitnessProgramScript(script []byte) bool {
	if len(script) < minWitnessProgramLen+2 ||
		len(script) > maxWitnessProgramLen+2 {

		return false
	}
	if script[0] != opZero && (script[0] < opOne || script[0] > opSixteen) {
		return false
	}
	return int(script[1]) == len(script)-2
}

// witnessVersionFromOp converts the leading opcode of a witness payment
// script back to its witness version.  The opcode must already be known to
// be a version opcode.
func witnessVersionFromOp(op byte) byte {
	if op == opZero {
		return 0
	}
	return op - opOne + 1
}

// PaymentScript returns the payment script (scriptPubKey) that sends to the
// address.  It is total over every constructed address: the payload was
// validated at construction, so script generation cannot fail.
func (a Address) PaymentScript() []byte {
	switch a.inner.kind {
	case kindPubKeyHash:
		return payToPubKeyHashScript(a.inner.hash)
	case kindScriptHash:
		return payToScriptHashScript(a.inner.hash)
	default:
		program := a.inner.program
		return witnessProgramScript(program.version,
			program.program[:program.programLen])
	}
}

// MatchesPaymentScript returns whether or not the address generates the
// provided payment script.  It performs a structural comparison without any
// allocations, so it is useful for matching outputs without constructing
// intermediate addresses.
func (a Address) MatchesPaymentScript(script []byte) bool {
	switch a.inner.kind {
	case kindPubKeyHash:
		return isPayToPubKeyHashScript(script) &&
			bytes.Equal(script[3:23], a.inner.hash[:])
	case kindScriptHash:
		return isPayToScriptHashScript(script) &&
			bytes.Equal(script[2:22], a.inner.hash[:])
	default:
		program := &a.inner.program
		return isWitnessProgramScript(script) &&
			witnessVersionFromOp(script[0]) == program.version &&
			bytes.Equal(script[2:],
				program.program[:program.programLen])
	}
}

// FromPaymentScript returns the checked address encoded by the provided
// payment script (scriptPubKey) on the network described by the provided
// parameters.
//
// Scripts matching none of the recognized templates fail with
// ErrUnrecognizedScript.  Witness-shaped scripts whose program length is
// invalid for their version fail with the witness program constructor's
// error.
func FromPaymentScript(script []byte,
	params *chaincfg.Params) (Address, error) {

	switch {
	case isPayToPubKeyHashScript(script):
		// The pattern match confirmed the exact structure, so the
		// hash is the fixed 20-byte range following the data push.
		return NewAddressPubKeyHash(script[3:23], params)

	case isPayToScriptHashScript(script):
		return NewAddressScriptHashFromHash(script[2:22], params)

	case isWitnessProgramScript(script):
		version := witnessVersionFromOp(script[0])
		return NewAddressWitnessProgram(version, script[2:], params)
	}

	str := fmt.Sprintf("script %x matches no recognized payment script "+
		"template", script)
	return Address{}, makeError(ErrUnrecognizedScript, str)
}
