// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160"
)

const (
	// These constants are the legacy base58 prefix bytes which encode the
	// network and address type combination.  They are the only four
	// values a legacy address may carry.
	pubKeyHashPrefixMain = 0x00
	pubKeyHashPrefixTest = 0x6f
	scriptHashPrefixMain = 0x05
	scriptHashPrefixTest = 0xc4

	// maxLegacyAddrLen is the maximum possible length of a base58check
	// encoded legacy address.  The 25 decoded bytes expand by at most a
	// factor of log_58(256) ~= 1.37, so anything longer cannot decode to
	// a valid address and is rejected before any decoding is attempted.
	// This acts as a guard against adversarially long inputs.
	maxLegacyAddrLen = 50
)

// segwitPrefixes are the lower-cased prefixes that route a string to the
// segwit decoder.  They are the three known human-readable parts followed by
// the bech32 separator.
var segwitPrefixes = []string{"bc1", "bcrt1", "tb1"}

// legacyPrefixes are the leading characters that route a string to the
// legacy decoder.  They are the first characters produced by base58
// encoding the four known prefix bytes.
var legacyPrefixes = []string{"1", "2", "3", "m", "n"}

// knownHrpFromString returns the known human-readable part matching the
// provided string or an error carrying the lower-cased offending prefix when
// it matches none of the three recognized values.
func knownHrpFromString(hrp string) (KnownHrp, error) {
	switch strings.ToLower(hrp) {
	case "bc":
		return HrpMainnet, nil
	case "tb":
		return HrpTestnets, nil
	case "bcrt":
		return HrpRegtest, nil
	}

	str := fmt.Sprintf("unknown human-readable part %q",
		strings.ToLower(hrp))
	return 0, makeError(ErrUnknownHrp, str)
}

// DecodeAddress decodes the provided address string and returns the
// network-unchecked address it represents.
//
// The encoding is detected from the string's prefix: strings beginning with
// one of the known segwit prefixes (bc1, bcrt1, tb1, case-insensitively) are
// decoded as bech32/bech32m, strings beginning with one of the known legacy
// leading characters (1, 2, 3, m, n) are decoded as base58check, and
// anything else fails with ErrUnknownHrp.  The routing is final: a string
// that matches a segwit prefix but fails bech32 validation reports the
// bech32 failure and is never retried as base58, and vice versa.
//
// The result is always unchecked because the string alone cannot establish
// which network the caller intends; see UncheckedAddress.RequireNetwork.
func DecodeAddress(addr string) (UncheckedAddress, error) {
	lower := strings.ToLower(addr)
	for _, prefix := range segwitPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return decodeSegwitAddress(addr)
		}
	}
	for _, prefix := range legacyPrefixes {
		if strings.HasPrefix(addr, prefix) {
			return decodeLegacyAddress(addr)
		}
	}

	// Report the would-be human-readable part for diagnostics.  The
	// bech32 separator is the last '1' in the string; when there is no
	// separator at all the whole string is reported.
	hrp := addr
	if pos := strings.LastIndexByte(addr, '1'); pos >= 0 {
		hrp = addr[:pos]
	}
	str := fmt.Sprintf("unknown human-readable part %q", strings.ToLower(hrp))
	return UncheckedAddress{}, makeError(ErrUnknownHrp, str)
}

// decodeLegacyAddress decodes a base58check legacy address into an
// unchecked address.
func decodeLegacyAddress(addr string) (UncheckedAddress, error) {
	// The provided address must not be larger than the maximum possible
	// encoded size.  This intentionally happens before any base58
	// arithmetic.
	if len(addr) > maxLegacyAddrLen {
		str := fmt.Sprintf("legacy address length %d exceeds max allowed %d",
			len(addr), maxLegacyAddrLen)
		return UncheckedAddress{}, makeError(ErrAddressTooLong, str)
	}

	// CheckDecode strips and verifies the 4-byte double-sha256 checksum
	// and splits off the leading prefix byte.  Bad alphabet characters
	// and bad checksums both surface here.
	decoded, prefix, err := base58.CheckDecode(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return UncheckedAddress{}, makeError(ErrBase58Decode, str)
	}

	// The payload between the prefix byte and the checksum must be
	// exactly one ripemd160 hash.
	if len(decoded) != ripemd160.Size {
		str := fmt.Sprintf("decoded address %q payload is %d bytes vs "+
			"required %d bytes", addr, len(decoded), ripemd160.Size)
		return UncheckedAddress{}, makeError(ErrInvalidBase58PayloadLen, str)
	}

	// The prefix byte encodes exactly one of the four known network and
	// type combinations.
	inner := addressInner{}
	switch prefix {
	case pubKeyHashPrefixMain:
		inner.kind, inner.network = kindPubKeyHash, NetworkMain
	case pubKeyHashPrefixTest:
		inner.kind, inner.network = kindPubKeyHash, NetworkTest
	case scriptHashPrefixMain:
		inner.kind, inner.network = kindScriptHash, NetworkMain
	case scriptHashPrefixTest:
		inner.kind, inner.network = kindScriptHash, NetworkTest
	default:
		str := fmt.Sprintf("invalid legacy address prefix 0x%02x", prefix)
		return UncheckedAddress{}, makeError(ErrInvalidLegacyPrefix, str)
	}
	copy(inner.hash[:], decoded)

	return UncheckedAddress{inner: inner}, nil
}

// decodeSegwitAddress decodes a bech32/bech32m segwit address into an
// unchecked address.
func decodeSegwitAddress(addr string) (UncheckedAddress, error) {
	// Decode the bech32 encoded address.  This rejects mixed case, bad
	// checksums, and malformed framing, and reports which checksum
	// constant the string was encoded with.
	hrpStr, data, bech32Version, err := bech32.DecodeGeneric(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return UncheckedAddress{}, makeError(ErrBech32Decode, str)
	}

	// The first data symbol is the witness version.
	if len(data) < 1 {
		str := fmt.Sprintf("address %q has no witness version", addr)
		return UncheckedAddress{}, makeError(ErrBech32Decode, str)
	}
	version := data[0]
	if version > maxWitnessVersion {
		str := fmt.Sprintf("witness version %d is greater than max "+
			"allowed %d", version, maxWitnessVersion)
		return UncheckedAddress{}, makeError(ErrInvalidWitnessVersion, str)
	}

	// The checksum constant is mandated by the witness version per
	// BIP350: the original bech32 constant for version 0 and the bech32m
	// constant for versions 1 through 16.  A payload carrying the wrong
	// era's checksum must be rejected even though the checksum itself is
	// internally consistent.
	if version == 0 && bech32Version != bech32.Version0 {
		str := fmt.Sprintf("address %q uses a bech32m checksum for "+
			"witness version 0", addr)
		return UncheckedAddress{}, makeError(ErrBech32Decode, str)
	}
	if version > 0 && bech32Version != bech32.VersionM {
		str := fmt.Sprintf("address %q uses a bech32 checksum for "+
			"witness version %d", addr, version)
		return UncheckedAddress{}, makeError(ErrBech32Decode, str)
	}

	// Regroup the remaining 5-bit symbols into the witness program bytes
	// with strict padding rules.
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("failed to regroup address %q data: %v", addr, err)
		return UncheckedAddress{}, makeError(ErrBech32Decode, str)
	}

	// Program length validation per witness version is deferred to the
	// witness program constructor.
	witnessProg, err := NewWitnessProgram(version, program)
	if err != nil {
		return UncheckedAddress{}, err
	}

	hrp, err := knownHrpFromString(hrpStr)
	if err != nil {
		return UncheckedAddress{}, err
	}

	inner := addressInner{
		kind:    kindWitness,
		program: witnessProg,
		hrp:     hrp,
	}
	return UncheckedAddress{inner: inner}, nil
}

// encodeAddress returns the text encoding of the provided payload.  Legacy
// payloads are base58check encoded with the prefix byte for their network
// and kind.  Witness payloads are bech32 encoded for version 0 and bech32m
// encoded for later versions, lower case unless upper is set.
//
// Constructors guarantee the payload is encodable, so failures from the
// underlying codecs indicate a violated invariant rather than bad input.
func encodeAddress(inner *addressInner, upper bool) string {
	switch inner.kind {
	case kindPubKeyHash:
		prefix := byte(pubKeyHashPrefixMain)
		if inner.network != NetworkMain {
			prefix = pubKeyHashPrefixTest
		}
		return base58.CheckEncode(inner.hash[:], prefix)

	case kindScriptHash:
		prefix := byte(scriptHashPrefixMain)
		if inner.network != NetworkMain {
			prefix = scriptHashPrefixTest
		}
		return base58.CheckEncode(inner.hash[:], prefix)

	default:
		program := inner.program
		encoded, err := encodeSegwitAddress(inner.hrp.String(),
			program.version, program.program[:program.programLen])
		if err != nil {
			// Unreachable for a constructed address; see above.
			return ""
		}
		if upper {
			encoded = strings.ToUpper(encoded)
		}
		return encoded
	}
}

// encodeSegwitAddress encodes the provided witness version and program into
// a bech32 (version 0) or bech32m (version 1+) address string with the
// provided human-readable part.
func encodeSegwitAddress(hrp string, version byte,
	program []byte) (string, error) {

	// Group the program bytes into 5-bit symbols and prepend the witness
	// version symbol.
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	combined := make([]byte, len(converted)+1)
	combined[0] = version
	copy(combined[1:], converted)

	if version == 0 {
		return bech32.Encode(hrp, combined)
	}
	return bech32.EncodeM(hrp, combined)
}
