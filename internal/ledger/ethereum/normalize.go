package ethereum

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"signet/internal/ledger"
)

// normalizeResult converts a getCertificate result into the canonical entry.
// Depending on how the ABI output is decoded the result arrives either as
// three positional values (string, string, uint256) or as a single generated
// struct with named fields. Both collapse to one shape here; neither leaks
// past this package.
//
// The contract returns zero values for unknown keys, so an empty digest means
// the identifier was never anchored.
func normalizeResult(out []interface{}) (ledger.Entry, error) {
	var entry ledger.Entry
	var err error

	switch len(out) {
	case 3:
		entry, err = fromPositional(out)
	case 1:
		entry, err = fromStruct(out[0])
	default:
		err = fmt.Errorf("unexpected getCertificate result arity %d", len(out))
	}
	if err != nil {
		return ledger.Entry{}, &ledger.ReadError{Err: err}
	}

	if entry.Digest == "" {
		return ledger.Entry{}, ledger.ErrNotAnchored
	}
	return entry, nil
}

func fromPositional(out []interface{}) (ledger.Entry, error) {
	identifier, ok := out[0].(string)
	if !ok {
		return ledger.Entry{}, fmt.Errorf("certificate number has type %T, want string", out[0])
	}
	digest, ok := out[1].(string)
	if !ok {
		return ledger.Entry{}, fmt.Errorf("digest has type %T, want string", out[1])
	}
	timestamp, ok := out[2].(*big.Int)
	if !ok {
		return ledger.Entry{}, fmt.Errorf("timestamp has type %T, want *big.Int", out[2])
	}
	return ledger.Entry{
		Identifier: identifier,
		Digest:     digest,
		AnchoredAt: unixToUTC(timestamp),
	}, nil
}

func fromStruct(v interface{}) (ledger.Entry, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ledger.Entry{}, fmt.Errorf("unexpected getCertificate result type %T", v)
	}

	identifier, ok := stringField(rv, "CertificateNumber")
	if !ok {
		return ledger.Entry{}, fmt.Errorf("result struct %T missing CertificateNumber", v)
	}
	digest, ok := stringField(rv, "Hash")
	if !ok {
		return ledger.Entry{}, fmt.Errorf("result struct %T missing Hash", v)
	}

	entry := ledger.Entry{Identifier: identifier, Digest: digest}
	if f := rv.FieldByName("Timestamp"); f.IsValid() {
		if ts, ok := f.Interface().(*big.Int); ok && ts != nil {
			entry.AnchoredAt = unixToUTC(ts)
		}
	}
	return entry, nil
}

func stringField(rv reflect.Value, name string) (string, bool) {
	f := rv.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

func unixToUTC(ts *big.Int) time.Time {
	if ts == nil || ts.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}
