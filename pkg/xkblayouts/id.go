package xkblayouts

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"hash/fnv"
	"strconv"
	"strings"
)

// maxIDLength is what fits in one notification payload word.
const maxIDLength = 8

// ID names one installed layout. It is the layout code for a plain layout
// and "code(variant)" when that fits in eight bytes. Longer names become up
// to four bytes of the code, a tilde and a hash of the full name, so every
// layout and variant pair gets its own identifier.
func ID(layout, variant string) hyprtint.LayoutID {
	full := layout
	if variant != "" {
		full = layout + "(" + variant + ")"
	}
	if len(full) <= maxIDLength {
		return hyprtint.LayoutID(full)
	}

	prefix := layout
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(full))
	sum := strconv.FormatUint(uint64(h.Sum32()), 36)
	sum = strings.Repeat("0", 7-len(sum)) + sum

	n := maxIDLength - len(prefix) - 1
	return hyprtint.LayoutID(prefix + "~" + sum[len(sum)-n:])
}
