// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcaddr converts between Bitcoin address strings and the payment
// scripts they represent.
//
// It supports all standard output types (pay-to-pubkey-hash,
// pay-to-script-hash, and the segwit family including taproot and
// pay-to-anchor) on all standard networks (mainnet, the test networks,
// signet, and regtest) across the two incompatible text encodings
// (base58check for the legacy types, bech32/bech32m for segwit).
//
// # Network validation
//
// Parsing a string always yields an UncheckedAddress.  An address string
// does not identify a single network: legacy prefix bytes are shared by
// every non-mainnet network, and the testnet human-readable part is shared
// by testnet3, testnet4, and signet.  Paying an address on the wrong
// network destroys funds, so everything that assumes funds-safety (text
// encoding, payment script generation, QR URIs) lives on the checked
// Address type, which is only reachable through
// UncheckedAddress.RequireNetwork, the documented-dangerous
// UncheckedAddress.AssumeChecked, or a constructor that takes the network
// explicitly.
//
// # Errors
//
// All fallible operations return errors built from the ErrorKind constants
// in this package with full errors.Is/As support.  Decoding is never
// lenient: a single corrupted character fails the relevant checksum and the
// string is rejected rather than repaired.
package btcaddr
