// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Params defines a Bitcoin network by the parameters needed to encode and
// decode addresses for it.  These parameters may be used by applications to
// differentiate addresses intended for one network from those intended for
// use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PubKeyHashAddrID is the magic prefix byte for legacy base58
	// pay-to-pubkey-hash addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the magic prefix byte for legacy base58
	// pay-to-script-hash addresses.
	ScriptHashAddrID byte

	// Bech32HRPSegwit is the human-readable part used in bech32 and
	// bech32m encoded segwit addresses.
	Bech32HRPSegwit string
}

// MainNetParams defines the network parameters for the main Bitcoin network.
var MainNetParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
	Bech32HRPSegwit:  "bc", // always bc for main net
}

// TestNet3Params defines the network parameters for the test Bitcoin network
// (version 3).
//
// Legacy address prefixes are shared with testnet4, signet, and regtest, so a
// legacy address cannot be distinguished between those networks.
var TestNet3Params = Params{
	Name:             "testnet3",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	Bech32HRPSegwit:  "tb", // always tb for test net
}

// TestNet4Params defines the network parameters for the test Bitcoin network
// (version 4).
var TestNet4Params = Params{
	Name:             "testnet4",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	Bech32HRPSegwit:  "tb", // always tb for test net
}

// SigNetParams defines the network parameters for the signet test network.
// Signet shares both its legacy prefix bytes and its segwit human-readable
// part with the other test networks.
var SigNetParams = Params{
	Name:             "signet",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	Bech32HRPSegwit:  "tb", // always tb for test net
}

// RegressionNetParams defines the network parameters for the regression test
// network.  It shares legacy prefix bytes with the test networks but uses a
// distinct segwit human-readable part.
var RegressionNetParams = Params{
	Name:             "regtest",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	Bech32HRPSegwit:  "bcrt",
}
