package replacements

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Compiled tables use the protobuf wire format without generated code:
//
//	message Table { repeated Entry entries = 1; }
//	message Entry { uint32 source = 1; string replacement = 2; }
const (
	fieldEntries     protowire.Number = 1
	fieldSource      protowire.Number = 1
	fieldReplacement protowire.Number = 2
)

// MarshalBinary encodes t in the compiled table format.
// Entries are written in source order so output is deterministic.
func MarshalBinary(t *Table) ([]byte, error) {
	var out []byte
	for _, e := range t.Entries() {
		var msg []byte
		msg = protowire.AppendTag(msg, fieldSource, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(e.Source))
		msg = protowire.AppendTag(msg, fieldReplacement, protowire.BytesType)
		msg = protowire.AppendString(msg, e.Replacement)

		out = protowire.AppendTag(out, fieldEntries, protowire.BytesType)
		out = protowire.AppendBytes(out, msg)
	}
	return out, nil
}

// UnmarshalBinary decodes a compiled table. Unknown fields are skipped.
func UnmarshalBinary(data []byte) (*Table, error) {
	t := &Table{m: make(map[rune]string)}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldEntries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		e, err := unmarshalEntry(msg)
		if err != nil {
			return nil, err
		}
		if err := t.insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func unmarshalEntry(msg []byte) (Entry, error) {
	var (
		e         Entry
		hasSource bool
	)
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return Entry{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]

		switch {
		case num == fieldSource && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return Entry{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			if v > 0x10FFFF {
				return Entry{}, fmt.Errorf("%w: source %d is not a code point", ErrMalformed, v)
			}
			e.Source = rune(v)
			hasSource = true
			msg = msg[n:]
		case num == fieldReplacement && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(msg)
			if n < 0 {
				return Entry{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			e.Replacement = v
			msg = msg[n:]
		default:
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return Entry{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			msg = msg[n:]
		}
	}
	if !hasSource {
		return Entry{}, fmt.Errorf("%w: entry without source", ErrMalformed)
	}
	return e, nil
}
