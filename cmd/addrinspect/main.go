// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// addrinspect decodes Bitcoin addresses (or payment scripts) from the
// command line and reports their type, network, and payment script.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/btclibs/btcaddr"
	"github.com/btclibs/btcaddr/chaincfg"
)

var log = slog.Disabled

// networkParams maps the accepted network names to their parameters.
var networkParams = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet3": &chaincfg.TestNet3Params,
	"testnet4": &chaincfg.TestNet4Params,
	"signet":   &chaincfg.SigNetParams,
	"regtest":  &chaincfg.RegressionNetParams,
}

type config struct {
	Network       string `short:"n" long:"network" description:"network to validate against (mainnet, testnet3, testnet4, signet, regtest)" default:"mainnet"`
	FromScript    bool   `short:"s" long:"from-script" description:"treat arguments as hex payment scripts instead of addresses"`
	QR            bool   `short:"q" long:"qr" description:"print the bitcoin: URI optimized for QR codes"`
	AssumeChecked bool   `long:"assume-checked" description:"skip network validation (dangerous: only use when the source of the address is trusted)"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"logging level {trace, debug, info, warn, error, critical}" default:"info"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

// inspect resolves a single argument to a checked address per the provided
// config and prints a report for it.
func inspect(arg string, cfg *config, params *chaincfg.Params) error {
	var addr btcaddr.Address
	if cfg.FromScript {
		script, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("invalid script hex %q: %w", arg, err)
		}
		addr, err = btcaddr.FromPaymentScript(script, params)
		if err != nil {
			return err
		}
	} else {
		unchecked, err := btcaddr.DecodeAddress(arg)
		if err != nil {
			return err
		}
		log.Debugf("decoded %s (network kind %v)", unchecked,
			unchecked.NetworkKind())

		if cfg.AssumeChecked {
			log.Warnf("skipping network validation for %s", unchecked)
			addr = unchecked.AssumeChecked()
		} else {
			addr, err = unchecked.RequireNetwork(params)
			if err != nil {
				// Report which networks would have accepted the
				// address before returning the failure.
				for name, p := range networkParams {
					if unchecked.IsValidForNet(p) {
						log.Infof("address is valid for network %s", name)
					}
				}
				return err
			}
		}
	}

	fmt.Printf("address: %s\n", addr)
	fmt.Printf("  type: %s\n", addr.AddressType())
	fmt.Printf("  network kind: %s\n", addr.NetworkKind())
	fmt.Printf("  payment script: %x\n", addr.PaymentScript())
	if program, ok := addr.WitnessProgram(); ok {
		fmt.Printf("  witness program: %s\n", program)
	}
	if cfg.QR {
		fmt.Printf("  uri: %s\n", addr.QRURI())
	}
	return nil
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] address..."
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) == 0 {
		usage(parser)
	}

	backend := slog.NewBackend(os.Stderr)
	log = backend.Logger("ADDR")
	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		fatalf("invalid debug level %q", cfg.DebugLevel)
	}
	log.SetLevel(level)

	params, ok := networkParams[cfg.Network]
	if !ok {
		fatalf("unknown network %q", cfg.Network)
	}

	failed := false
	for _, arg := range args {
		if err := inspect(arg, &cfg, params); err != nil {
			log.Errorf("%s: %v", arg, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
