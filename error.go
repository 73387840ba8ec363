// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of address error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ------------------------------------------
	// Failures related to decoding address text.
	// ------------------------------------------

	// ErrUnknownHrp is returned when an address string begins with a
	// human-readable part that matches neither the known segwit prefixes
	// nor the known legacy prefixes.
	ErrUnknownHrp = ErrorKind("ErrUnknownHrp")

	// ErrBech32Decode is returned when a string routed to the segwit
	// decoder is not a well-formed bech32 or bech32m string.  This
	// includes framing errors, bad checksums, mixed case, and payloads
	// encoded with the wrong checksum constant for their witness version.
	ErrBech32Decode = ErrorKind("ErrBech32Decode")

	// ErrInvalidWitnessVersion is returned when a segwit address encodes
	// a witness version outside the supported range of 0 through 16.
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrInvalidWitnessProgram is returned when a witness program does
	// not satisfy the length constraints for its witness version.
	ErrInvalidWitnessProgram = ErrorKind("ErrInvalidWitnessProgram")

	// ErrBase58Decode is returned when a string routed to the legacy
	// decoder contains characters outside the base58 alphabet or fails
	// its checksum.
	ErrBase58Decode = ErrorKind("ErrBase58Decode")

	// ErrInvalidBase58PayloadLen is returned when a legacy address
	// decodes successfully but its payload is not the expected 21 bytes
	// (one prefix byte plus a 20-byte hash) before the checksum.
	ErrInvalidBase58PayloadLen = ErrorKind("ErrInvalidBase58PayloadLen")

	// ErrInvalidLegacyPrefix is returned when a legacy address decodes
	// successfully but its prefix byte matches none of the four known
	// network and type combinations.
	ErrInvalidLegacyPrefix = ErrorKind("ErrInvalidLegacyPrefix")

	// ErrAddressTooLong is returned when a legacy address string exceeds
	// the maximum possible encoded length.  The check happens before any
	// decoding is attempted.
	ErrAddressTooLong = ErrorKind("ErrAddressTooLong")

	// ---------------------------------------
	// Failures related to improper API usage.
	// ---------------------------------------

	// ErrInvalidHashLength is returned when a hash provided to an address
	// constructor is not the required length.
	ErrInvalidHashLength = ErrorKind("ErrInvalidHashLength")

	// ErrInvalidPubKey is returned when a serialized public key provided
	// to an address constructor fails to parse.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrScriptSize is returned when a redeem script or witness script
	// provided to an address constructor exceeds the maximum size allowed
	// for its script type.
	ErrScriptSize = ErrorKind("ErrScriptSize")

	// ErrUnknownAddressType is returned when a string matches none of the
	// known address type names.
	ErrUnknownAddressType = ErrorKind("ErrUnknownAddressType")

	// -------------------------------------------
	// Failures related to scripts and validation.
	// -------------------------------------------

	// ErrUnrecognizedScript is returned when a script matches none of the
	// recognized payment script templates.
	ErrUnrecognizedScript = ErrorKind("ErrUnrecognizedScript")

	// ErrNetworkMismatch is returned when network validation of an
	// unchecked address fails because the network embedded in the address
	// does not match the required network.
	ErrNetworkMismatch = ErrorKind("ErrNetworkMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// NetworkMismatchError is returned by RequireNetwork when the network
// embedded in an unchecked address does not match the required network.  It
// carries both the required network name and the offending address so a
// caller can produce precise diagnostics without re-parsing.
//
// It wraps ErrNetworkMismatch, so errors.Is(err, ErrNetworkMismatch) may be
// used to detect it without inspecting the concrete type.
type NetworkMismatchError struct {
	// RequiredNet is the name of the network validation was performed
	// against.
	RequiredNet string

	// Address is the address that failed validation.
	Address UncheckedAddress
}

// Error satisfies the error interface and prints human-readable errors.
func (e NetworkMismatchError) Error() string {
	return fmt.Sprintf("address %s is not valid for network %s", e.Address,
		e.RequiredNet)
}

// Unwrap returns ErrNetworkMismatch.
func (e NetworkMismatchError) Unwrap() error {
	return ErrNetworkMismatch
}

// IsDecodeErr returns whether or not the provided error is one of the error
// kinds which can be returned when decoding an address string, as opposed to
// the kinds caused by improper API usage.
func IsDecodeErr(err error) bool {
	var kind ErrorKind
	if !errors.As(err, &kind) {
		return false
	}

	switch kind {
	case ErrUnknownHrp, ErrBech32Decode, ErrInvalidWitnessVersion,
		ErrInvalidWitnessProgram, ErrBase58Decode,
		ErrInvalidBase58PayloadLen, ErrInvalidLegacyPrefix,
		ErrAddressTooLong:

		return true
	}

	return false
}
