// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address-encoding parameters for the standard
// Bitcoin networks.
//
// The exported Params instances describe the main network, the test networks
// (testnet3, testnet4, and signet), and the regression test network.  Several
// networks intentionally share parameters: all non-mainnet networks use the
// same legacy base58 prefix bytes, and testnet3, testnet4, and signet share
// the "tb" segwit human-readable part while regtest uses "bcrt".  Code that
// needs to distinguish between those networks cannot do so from an address
// alone.
package chaincfg
