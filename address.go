// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"golang.org/x/crypto/ripemd160"

	"github.com/btclibs/btcaddr/chaincfg"
)

const (
	// maxRedeemScriptSize is the maximum size of a redeem script that may
	// be hashed into a pay-to-script-hash address.  Larger scripts render
	// outputs unspendable per BIP16.
	maxRedeemScriptSize = 520

	// maxWitnessScriptSize is the maximum size of a witness script that
	// may be hashed into a pay-to-witness-script-hash address.
	maxWitnessScriptSize = 10000
)

// AddressType identifies the standard payment encumbrance an address
// represents.  The zero value identifies non-standard addresses, including
// witness programs with unassigned versions or non-standard lengths.
type AddressType int

// These constants define the supported address types.
const (
	// AddressTypeNonStandard indicates an address that is valid but
	// matches none of the standard payment templates.
	AddressTypeNonStandard AddressType = iota

	// AddressTypeP2PKH identifies a pay-to-pubkey-hash address.
	AddressTypeP2PKH

	// AddressTypeP2SH identifies a pay-to-script-hash address.
	AddressTypeP2SH

	// AddressTypeP2WPKH identifies a pay-to-witness-pubkey-hash address.
	AddressTypeP2WPKH

	// AddressTypeP2WSH identifies a pay-to-witness-script-hash address.
	AddressTypeP2WSH

	// AddressTypeP2TR identifies a pay-to-taproot address.
	AddressTypeP2TR

	// AddressTypeP2A identifies a pay-to-anchor address.
	AddressTypeP2A
)

// addressTypeNames maps the address types to their human-readable names.
var addressTypeNames = map[AddressType]string{
	AddressTypeNonStandard: "nonstandard",
	AddressTypeP2PKH:       "p2pkh",
	AddressTypeP2SH:        "p2sh",
	AddressTypeP2WPKH:      "p2wpkh",
	AddressTypeP2WSH:       "p2wsh",
	AddressTypeP2TR:        "p2tr",
	AddressTypeP2A:         "p2a",
}

// String returns the human-readable name of the address type.
func (t AddressType) String() string {
	if name, ok := addressTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("addresstype<%d>", int(t))
}

// ParseAddressType returns the address type identified by the provided
// human-readable name.
//
// Only the six standard type names are accepted; "nonstandard" is a
// description of a classification result, not a parseable type, and is
// rejected along with anything else unknown.
func ParseAddressType(name string) (AddressType, error) {
	for addrType, typeName := range addressTypeNames {
		if addrType != AddressTypeNonStandard && name == typeName {
			return addrType, nil
		}
	}

	str := fmt.Sprintf("%q does not identify a known address type", name)
	return 0, makeError(ErrUnknownAddressType, str)
}

// NetworkKind is the coarse network classification carried by legacy
// addresses.  Legacy base58 prefix bytes do not distinguish between the
// various non-mainnet networks, so all of testnet3, testnet4, signet, and
// regtest collapse to NetworkTest.
type NetworkKind uint8

// These constants define the supported network kinds.
const (
	// NetworkMain identifies the main Bitcoin network.
	NetworkMain NetworkKind = iota

	// NetworkTest identifies any of the test networks, including
	// regtest.
	NetworkTest
)

// String returns the human-readable name of the network kind.
func (k NetworkKind) String() string {
	if k == NetworkMain {
		return "main"
	}
	return "test"
}

// KnownHrp is the set of bech32 human-readable parts recognized by this
// package.  It is the network classification carried by segwit addresses.
// Unlike legacy prefix bytes, the human-readable part distinguishes regtest
// from the other test networks, but testnet3, testnet4, and signet still
// share a single value.
type KnownHrp uint8

// These constants define the recognized human-readable parts.
const (
	// HrpMainnet is the human-readable part for the main network ("bc").
	HrpMainnet KnownHrp = iota

	// HrpTestnets is the human-readable part shared by testnet3,
	// testnet4, and signet ("tb").
	HrpTestnets

	// HrpRegtest is the human-readable part for the regression test
	// network ("bcrt").
	HrpRegtest
)

// String returns the literal human-readable part.
func (hrp KnownHrp) String() string {
	switch hrp {
	case HrpMainnet:
		return "bc"
	case HrpTestnets:
		return "tb"
	default:
		return "bcrt"
	}
}

// networkKind returns the network kind the human-readable part collapses to.
// Both the test networks and regtest are test networks for the purposes of
// the coarse classification.
func (hrp KnownHrp) networkKind() NetworkKind {
	if hrp == HrpMainnet {
		return NetworkMain
	}
	return NetworkTest
}

// networkKindFromParams returns the network kind derived from the provided
// network parameters.
func networkKindFromParams(params *chaincfg.Params) NetworkKind {
	if params.PubKeyHashAddrID == pubKeyHashPrefixMain {
		return NetworkMain
	}
	return NetworkTest
}

// knownHrpFromParams returns the known human-readable part derived from the
// provided network parameters or an error when the parameters describe a
// network with an unrecognized segwit prefix.
func knownHrpFromParams(params *chaincfg.Params) (KnownHrp, error) {
	return knownHrpFromString(params.Bech32HRPSegwit)
}

// addressKind identifies which variant of the payload sum type an address
// carries.
type addressKind uint8

const (
	// kindPubKeyHash is a legacy pay-to-pubkey-hash payload.
	kindPubKeyHash addressKind = iota

	// kindScriptHash is a legacy pay-to-script-hash payload.
	kindScriptHash

	// kindWitness is a segwit witness program payload.
	kindWitness
)

// addressInner is the payload of an address without the validation state: a
// closed sum over the three payload shapes.  Exactly the fields relevant to
// the kind are populated; the rest hold their zero values so that structural
// equality via == behaves correctly.
//
// Values are immutable after construction.  All mutating-looking operations
// on addresses construct new values.
type addressInner struct {
	kind addressKind

	// hash and network are populated for the legacy kinds.
	hash    [20]byte
	network NetworkKind

	// program and hrp are populated for the witness kind.
	program WitnessProgram
	hrp     KnownHrp
}

// networkKind returns the coarse network classification of the payload.
func (inner *addressInner) networkKind() NetworkKind {
	if inner.kind == kindWitness {
		return inner.hrp.networkKind()
	}
	return inner.network
}

// isValidForNet returns whether or not the payload's embedded network tag is
// consistent with the provided network parameters, accounting for the
// many-to-one network collapses described on NetworkKind and KnownHrp.
func (inner *addressInner) isValidForNet(params *chaincfg.Params) bool {
	if inner.kind == kindWitness {
		hrp, err := knownHrpFromParams(params)
		return err == nil && hrp == inner.hrp
	}
	return inner.network == networkKindFromParams(params)
}

// payloadBytes returns the useful payload bytes of the address excluding any
// serialization prefixes: the pubkey hash for p2pkh, the script hash for
// p2sh, and the witness program bytes for segwit addresses.  The returned
// slice must not be modified.
func (inner *addressInner) payloadBytes() []byte {
	if inner.kind == kindWitness {
		return inner.program.program[:inner.program.programLen]
	}
	return inner.hash[:]
}

// Address is a network-checked Bitcoin address: a payment destination whose
// embedded network information has either been validated against an expected
// network or supplied directly by a constructor.
//
// Addresses are immutable value types with structural equality, so they may
// be compared with ==, used as map keys, and shared freely across
// goroutines.
//
// Constructing an Address is possible in exactly two ways: through one of
// the New* constructors, which take the target network explicitly, or by
// upgrading an UncheckedAddress via RequireNetwork or AssumeChecked.
// Parsing text always produces an UncheckedAddress; see DecodeAddress.
type Address struct {
	inner addressInner
}

// UncheckedAddress is a parsed but not yet network-validated Bitcoin
// address.
//
// Every parse operation yields an UncheckedAddress because an address string
// alone cannot prove which network the caller intends to use it on, and
// paying an address that is valid on the wrong network destroys funds.  The
// only operations that produce a checked Address from an unchecked one are
// RequireNetwork, which validates, and AssumeChecked, which explicitly does
// not.
//
// Like Address, values are immutable with structural equality.
type UncheckedAddress struct {
	inner addressInner
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sum := sha256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	return hasher.Sum(nil)
}

// newLegacyAddress returns a checked legacy address for the provided kind,
// 20-byte hash, and network parameters.
func newLegacyAddress(kind addressKind, hash []byte,
	params *chaincfg.Params) (Address, error) {

	if len(hash) != ripemd160.Size {
		str := fmt.Sprintf("hash is %d bytes vs required %d bytes",
			len(hash), ripemd160.Size)
		return Address{}, makeError(ErrInvalidHashLength, str)
	}

	inner := addressInner{
		kind:    kind,
		network: networkKindFromParams(params),
	}
	copy(inner.hash[:], hash)
	return Address{inner: inner}, nil
}

// NewAddressPubKeyHash returns a new pay-to-pubkey-hash address for the
// provided 20-byte pubkey hash on the provided network.
func NewAddressPubKeyHash(pkHash []byte,
	params *chaincfg.Params) (Address, error) {

	return newLegacyAddress(kindPubKeyHash, pkHash, params)
}

// NewAddressPubKey returns a new pay-to-pubkey-hash address derived from the
// provided serialized public key on the provided network.
//
// The hash commits to the serialization exactly as provided, so compressed
// and uncompressed serializations of the same key produce different
// addresses.
func NewAddressPubKey(serializedPubKey []byte,
	params *chaincfg.Params) (Address, error) {

	// Ensure the provided bytes are both a valid serialization and a
	// valid point on the secp256k1 curve.
	_, err := btcec.ParsePubKey(serializedPubKey)
	if err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return Address{}, makeError(ErrInvalidPubKey, str)
	}

	return NewAddressPubKeyHash(Hash160(serializedPubKey), params)
}

// NewAddressScriptHashFromHash returns a new pay-to-script-hash address for
// the provided 20-byte script hash on the provided network.
//
// The hash pre-image (the redeem script) must not exceed 520 bytes in
// length, otherwise outputs created from the returned address will be
// unspendable.  This constructor cannot enforce that; see
// NewAddressScriptHash for a variant that can.
func NewAddressScriptHashFromHash(scriptHash []byte,
	params *chaincfg.Params) (Address, error) {

	return newLegacyAddress(kindScriptHash, scriptHash, params)
}

// NewAddressScriptHash returns a new pay-to-script-hash address that commits
// to the provided redeem script on the provided network.
func NewAddressScriptHash(redeemScript []byte,
	params *chaincfg.Params) (Address, error) {

	if len(redeemScript) > maxRedeemScriptSize {
		str := fmt.Sprintf("redeem script size %d exceeds max allowed %d",
			len(redeemScript), maxRedeemScriptSize)
		return Address{}, makeError(ErrScriptSize, str)
	}
	return NewAddressScriptHashFromHash(Hash160(redeemScript), params)
}

// newSegwitAddress returns a checked segwit address for the provided witness
// program on the provided network.
func newSegwitAddress(program WitnessProgram,
	params *chaincfg.Params) (Address, error) {

	hrp, err := knownHrpFromParams(params)
	if err != nil {
		return Address{}, err
	}

	inner := addressInner{
		kind:    kindWitness,
		program: program,
		hrp:     hrp,
	}
	return Address{inner: inner}, nil
}

// NewAddressWitnessProgram returns a new segwit address for an arbitrary
// witness program on the provided network.
//
// This primarily exists to support future witness versions.  Callers dealing
// with the standard output types will usually prefer one of the specific
// constructors.
func NewAddressWitnessProgram(version byte, program []byte,
	params *chaincfg.Params) (Address, error) {

	witnessProg, err := NewWitnessProgram(version, program)
	if err != nil {
		return Address{}, err
	}
	return newSegwitAddress(witnessProg, params)
}

// NewAddressWitnessPubKeyHash returns a new pay-to-witness-pubkey-hash
// address for the provided 20-byte pubkey hash on the provided network.
func NewAddressWitnessPubKeyHash(pkHash []byte,
	params *chaincfg.Params) (Address, error) {

	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("pubkey hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return Address{}, makeError(ErrInvalidHashLength, str)
	}
	return NewAddressWitnessProgram(0, pkHash, params)
}

// NewAddressWitnessPubKey returns a new pay-to-witness-pubkey-hash address
// derived from the provided public key on the provided network.
//
// The hash commits to the compressed serialization of the key as required
// for version 0 witness outputs by BIP143.
func NewAddressWitnessPubKey(pubKey *btcec.PublicKey,
	params *chaincfg.Params) (Address, error) {

	return NewAddressWitnessPubKeyHash(
		Hash160(pubKey.SerializeCompressed()), params)
}

// NewAddressWitnessScriptHash returns a new pay-to-witness-script-hash
// address for the provided 32-byte script hash on the provided network.
func NewAddressWitnessScriptHash(scriptHash []byte,
	params *chaincfg.Params) (Address, error) {

	if len(scriptHash) != sha256.Size {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), sha256.Size)
		return Address{}, makeError(ErrInvalidHashLength, str)
	}
	return NewAddressWitnessProgram(0, scriptHash, params)
}

// NewAddressWitnessScript returns a new pay-to-witness-script-hash address
// that commits to the provided witness script on the provided network.
func NewAddressWitnessScript(witnessScript []byte,
	params *chaincfg.Params) (Address, error) {

	if len(witnessScript) > maxWitnessScriptSize {
		str := fmt.Sprintf("witness script size %d exceeds max allowed %d",
			len(witnessScript), maxWitnessScriptSize)
		return Address{}, makeError(ErrScriptSize, str)
	}
	scriptHash := sha256.Sum256(witnessScript)
	return NewAddressWitnessProgram(0, scriptHash[:], params)
}

// NewAddressTaprootKey returns a new pay-to-taproot address for the provided
// taproot output key on the provided network.
//
// The key must already be tweaked per BIP341; no tweaking is performed.  See
// NewAddressTaproot for a variant that derives the output key from an
// internal key.
func NewAddressTaprootKey(outputKey *btcec.PublicKey,
	params *chaincfg.Params) (Address, error) {

	return NewAddressWitnessProgram(1, schnorr.SerializePubKey(outputKey),
		params)
}

// NewAddressTaproot returns a new pay-to-taproot address derived from the
// provided internal key and optional merkle root on the provided network.
//
// The output key is computed per BIP341 as lift_x(internalKey) + t*G where t
// is the TapTweak tagged hash of the x-only internal key and the merkle
// root.  A nil merkle root commits to a key-path-only spend.
func NewAddressTaproot(internalKey *btcec.PublicKey, merkleRoot []byte,
	params *chaincfg.Params) (Address, error) {

	// The tweak commits to the x-only serialization, which implies the
	// even-y lift of the internal key regardless of how the caller's key
	// serializes.
	xOnly := schnorr.SerializePubKey(internalKey)
	liftedKey, err := schnorr.ParsePubKey(xOnly)
	if err != nil {
		str := fmt.Sprintf("failed to lift internal key: %v", err)
		return Address{}, makeError(ErrInvalidPubKey, str)
	}

	tweak := taprootTweakHash(xOnly, merkleRoot)
	var tweakScalar btcec.ModNScalar
	if overflow := tweakScalar.SetByteSlice(tweak); overflow {
		str := "taproot tweak exceeds the curve order"
		return Address{}, makeError(ErrInvalidPubKey, str)
	}

	// outputKey = liftedKey + tweak*G.
	var tweakPoint, internalPoint, outputPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &tweakPoint)
	liftedKey.AsJacobian(&internalPoint)
	btcec.AddNonConst(&internalPoint, &tweakPoint, &outputPoint)
	outputPoint.ToAffine()
	outputKey := btcec.NewPublicKey(&outputPoint.X, &outputPoint.Y)

	return NewAddressTaprootKey(outputKey, params)
}

// taprootTweakHash computes the BIP341 TapTweak tagged hash of the provided
// x-only internal key and optional merkle root:
// sha256(sha256(tag) || sha256(tag) || xOnlyKey || merkleRoot).
func taprootTweakHash(xOnlyKey, merkleRoot []byte) []byte {
	tagHash := sha256.Sum256([]byte("TapTweak"))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(xOnlyKey)
	h.Write(merkleRoot)
	return h.Sum(nil)
}

// NewAddressAnchor returns the fixed pay-to-anchor address for the provided
// network.  Pay-to-anchor is an unspendable-by-signature witness version 1
// output with a fixed 2-byte program, used for CPFP fee anchors.
func NewAddressAnchor(params *chaincfg.Params) (Address, error) {
	return NewAddressWitnessProgram(1, anchorProgram[:], params)
}

// NewAddressNestedWitnessPubKey returns a new pay-to-script-hash address
// that nests a pay-to-witness-pubkey-hash redeem script for the provided
// public key on the provided network.
//
// This is the segwit output type that looks familiar to legacy clients.
func NewAddressNestedWitnessPubKey(pubKey *btcec.PublicKey,
	params *chaincfg.Params) (Address, error) {

	redeemScript := witnessProgramScript(0,
		Hash160(pubKey.SerializeCompressed()))
	return NewAddressScriptHash(redeemScript, params)
}

// NewAddressNestedWitnessScript returns a new pay-to-script-hash address
// that nests a pay-to-witness-script-hash redeem script committing to the
// provided witness script on the provided network.
func NewAddressNestedWitnessScript(witnessScript []byte,
	params *chaincfg.Params) (Address, error) {

	if len(witnessScript) > maxWitnessScriptSize {
		str := fmt.Sprintf("witness script size %d exceeds max allowed %d",
			len(witnessScript), maxWitnessScriptSize)
		return Address{}, makeError(ErrScriptSize, str)
	}
	scriptHash := sha256.Sum256(witnessScript)
	redeemScript := witnessProgramScript(0, scriptHash[:])
	return NewAddressScriptHash(redeemScript, params)
}

// String returns the text encoding of the address: base58check for the
// legacy kinds and lower-case bech32 or bech32m for segwit.
func (a Address) String() string {
	return encodeAddress(&a.inner, false)
}

// QRURI returns a "bitcoin:<address>" URI optimized for QR code encoding.
//
// Segwit addresses are upper-cased because QR codes permit the use of
// alphanumeric mode for upper-case strings, which is substantially more
// compact; legacy addresses are case-sensitive and left as-is.  The result
// is a one-way projection, not a parse target.
func (a Address) QRURI() string {
	return "bitcoin:" + encodeAddress(&a.inner, true)
}

// AddressType returns the standard payment type the address represents, or
// AddressTypeNonStandard for witness programs with unassigned versions or
// non-standard lengths.
func (a Address) AddressType() AddressType {
	switch a.inner.kind {
	case kindPubKeyHash:
		return AddressTypeP2PKH
	case kindScriptHash:
		return AddressTypeP2SH
	default:
		program := &a.inner.program
		switch {
		case program.IsP2WPKH():
			return AddressTypeP2WPKH
		case program.IsP2WSH():
			return AddressTypeP2WSH
		case program.IsP2TR():
			return AddressTypeP2TR
		case program.IsP2A():
			return AddressTypeP2A
		}
		return AddressTypeNonStandard
	}
}

// IsSpendStandard returns whether or not spending from the address follows
// Bitcoin standardness rules.  Witness programs with unassigned versions or
// non-standard lengths are not standard.  Senders need not care; receivers
// may use this to check whether they will be able to spend what they
// receive.
func (a Address) IsSpendStandard() bool {
	return a.AddressType() != AddressTypeNonStandard
}

// NetworkKind returns the coarse network classification of the address.
func (a Address) NetworkKind() NetworkKind {
	return a.inner.networkKind()
}

// PubKeyHash returns the pubkey hash and true when the address is a
// pay-to-pubkey-hash address.
func (a Address) PubKeyHash() ([20]byte, bool) {
	if a.inner.kind != kindPubKeyHash {
		return [20]byte{}, false
	}
	return a.inner.hash, true
}

// ScriptHash returns the script hash and true when the address is a
// pay-to-script-hash address.
func (a Address) ScriptHash() ([20]byte, bool) {
	if a.inner.kind != kindScriptHash {
		return [20]byte{}, false
	}
	return a.inner.hash, true
}

// WitnessProgram returns the witness program and true when the address is a
// segwit address.
func (a Address) WitnessProgram() (WitnessProgram, bool) {
	if a.inner.kind != kindWitness {
		return WitnessProgram{}, false
	}
	return a.inner.program, true
}

// IsRelatedToPubKey returns whether or not the provided serialized public
// key is directly related to the address payload.
//
// The payload is compared against the hash of the serialized key, the
// x-only form of the key, and the nested segwit redeem hash generated from
// the key.  For taproot addresses the key is assumed to already be tweaked.
func (a Address) IsRelatedToPubKey(serializedPubKey []byte) bool {
	pubKey, err := btcec.ParsePubKey(serializedPubKey)
	if err != nil {
		return false
	}

	payload := a.inner.payloadBytes()
	pkHash := Hash160(serializedPubKey)
	if bytes.Equal(pkHash, payload) {
		return true
	}
	if bytes.Equal(schnorr.SerializePubKey(pubKey), payload) {
		return true
	}
	return bytes.Equal(Hash160(witnessProgramScript(0, pkHash)), payload)
}

// IsRelatedToTaprootKey returns whether or not the provided 32-byte x-only
// key is the witness program of the address.  This can only be true for
// taproot addresses, and the key is assumed to already be tweaked.
func (a Address) IsRelatedToTaprootKey(serializedKey []byte) bool {
	return bytes.Equal(serializedKey, a.inner.payloadBytes())
}

// Unchecked demotes the address back to the network-unchecked state.  This
// is mostly useful for comparing against freshly parsed addresses in tests
// and storage layers.
func (a Address) Unchecked() UncheckedAddress {
	return UncheckedAddress{inner: a.inner}
}

// String returns the text encoding of the address wrapped in an indicator
// that its network has not been checked.  This is deliberate: it keeps
// unchecked addresses out of user-facing output so that the network check is
// not silently skipped.  Use the text-marshaling boundary or upgrade the
// address for the plain encoding.
func (a UncheckedAddress) String() string {
	return "unchecked(" + encodeAddress(&a.inner, false) + ")"
}

// NetworkKind returns the coarse network classification of the address.
func (a UncheckedAddress) NetworkKind() NetworkKind {
	return a.inner.networkKind()
}

// IsValidForNet returns whether or not the address is valid for the network
// described by the provided parameters.
//
// Parsed addresses do not always identify one network.  Legacy testnet,
// signet, and regtest addresses share the same prefix bytes, and bech32
// signet addresses share the testnet human-readable part, so such addresses
// are valid for every network in their class.  A simple comparison against
// an address decoded on an expected network is therefore not enough; this
// predicate accounts for the collapses.
func (a UncheckedAddress) IsValidForNet(params *chaincfg.Params) bool {
	return a.inner.isValidForNet(params)
}

// RequireNetwork returns the address upgraded to the network-checked state
// when it is valid for the network described by the provided parameters.
//
// On mismatch it returns a NetworkMismatchError carrying both the required
// network name and this address, so the caller can report what was wrong
// without re-parsing.
func (a UncheckedAddress) RequireNetwork(
	params *chaincfg.Params) (Address, error) {

	if !a.IsValidForNet(params) {
		return Address{}, NetworkMismatchError{
			RequiredNet: params.Name,
			Address:     a,
		}
	}
	return a.AssumeChecked(), nil
}

// AssumeChecked marks the network of the address as checked without
// performing any validation.
//
// Improper use of this method may lead to loss of funds since nothing
// prevents the result from being paid on a network the address was never
// intended for.  Callers will almost always prefer RequireNetwork.
func (a UncheckedAddress) AssumeChecked() Address {
	return Address{inner: a.inner}
}
