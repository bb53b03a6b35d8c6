package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Canonicalization errors.
var (
	// ErrUnsupportedValue is returned for values with no JSON representation.
	ErrUnsupportedValue = errors.New("value cannot be canonicalized")
	// ErrKeyCollision is returned when two map keys share the same NFC form.
	ErrKeyCollision = errors.New("normalized map key collision")
	// ErrNonFiniteNumber is returned for NaN and infinite numbers.
	ErrNonFiniteNumber = errors.New("non-finite numbers are not allowed")
)

// Canonicalize encodes v as JSON with object keys sorted ascending, strings in
// NFC and numbers in their shortest form. v is first passed through
// encoding/json so struct tags and custom marshalers apply.
func Canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}

	var buf bytes.Buffer
	if err := writeValue(&buf, generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Hash returns the hex SHA-256 of the canonical encoding of v.
func Hash(v any) (string, error) {
	canonical, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch value := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if value {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		return writeString(buf, value)
	case json.Number:
		return writeNumber(buf, value)
	case map[string]any:
		return writeObject(buf, value)
	case []any:
		buf.WriteByte('[')
		for i, item := range value {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(norm.NFC.String(s))
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}

// writeNumber prints integers verbatim and everything else in shortest
// round-trip form, so 1.50 and 1.5 hash alike.
func writeNumber(buf *bytes.Buffer, n json.Number) error {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return fmt.Errorf("%w: number %q", ErrUnsupportedValue, n)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ErrNonFiniteNumber
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		buf.WriteString(strconv.FormatInt(int64(f), 10))
		return nil
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func writeObject(buf *bytes.Buffer, m map[string]any) error {
	type entry struct {
		key   string
		value any
	}

	entries := make([]entry, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for k, v := range m {
		key := norm.NFC.String(k)
		if _, dup := seen[key]; dup {
			return ErrKeyCollision
		}
		seen[key] = struct{}{}
		entries = append(entries, entry{key: key, value: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, e.key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, e.value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
