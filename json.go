// Copyright (c) 2023-2025 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcaddr

// The text-marshaling boundary serializes an address of either validation
// state as its plain text encoding.  Deserialization exists only for the
// unchecked state: the validation state is a runtime fact about the string
// and the wire format cannot assert it, so anything read back must pass
// through RequireNetwork (or the explicit AssumeChecked escape hatch) before
// it is safe to pay.

// MarshalText returns the text encoding of the address.  It implements the
// encoding.TextMarshaler interface so addresses serialize as plain strings
// with encoding/json and similar frameworks.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// MarshalText returns the plain text encoding of the address, without the
// unchecked-state indicator used by String.  It implements the
// encoding.TextMarshaler interface.
func (a UncheckedAddress) MarshalText() ([]byte, error) {
	return []byte(encodeAddress(&a.inner, false)), nil
}

// UnmarshalText decodes the provided text into the address.  It implements
// the encoding.TextUnmarshaler interface.
//
// There is deliberately no UnmarshalText on Address: deserialized addresses
// are always unchecked.
func (a *UncheckedAddress) UnmarshalText(text []byte) error {
	decoded, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
