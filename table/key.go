// SPDX-License-Identifier: MIT

package table

import (
	"encoding/binary"
	"math"
)

// Key encoding tags. One byte per value, ahead of a fixed- or
// length-prefixed payload, so no two distinct tuples share an encoding.
const (
	keyAbsent = 'A'
	keyString = 'S'
	keyNumber = 'N'
	keyInt    = 'I'
	keyBool   = 'B'
)

// EncodeKey renders a tuple of values as a deterministic, injective string,
// suitable as a map key for grouping, deduplication and join matching.
// Two tuples encode equally iff they are elementwise Equal: the absent
// marker has its own tag and numbers are encoded by bit pattern.
// Complexity: O(total payload bytes).
func EncodeKey(vals ...Value) string {
	// Size hint: tag + ≤9 payload bytes per scalar, plus string bytes.
	n := 0
	for _, v := range vals {
		n += 10
		if !v.absent && v.kind == KindString {
			n += len(v.s)
		}
	}
	buf := make([]byte, 0, n)
	for _, v := range vals {
		buf = appendKeyValue(buf, v)
	}

	return string(buf)
}

// appendKeyValue appends the tagged encoding of one value.
func appendKeyValue(buf []byte, v Value) []byte {
	if v.absent {
		return append(buf, keyAbsent)
	}
	switch v.kind {
	case KindNumber:
		buf = append(buf, keyNumber)
		return binary.BigEndian.AppendUint64(buf, math.Float64bits(v.f))
	case KindInt:
		buf = append(buf, keyInt)
		return binary.BigEndian.AppendUint64(buf, uint64(v.i))
	case KindBool:
		buf = append(buf, keyBool)
		if v.b {
			return append(buf, 1)
		}
		return append(buf, 0)
	default:
		buf = append(buf, keyString)
		buf = binary.AppendUvarint(buf, uint64(len(v.s)))
		return append(buf, v.s...)
	}
}
