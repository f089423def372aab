package inputmask

import (
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/blake2b"
)

const digestSize = blake2b.Size256

// digest fingerprints everything that affects a compiled mask: the pattern,
// the mask-relevant configuration, and the default layer revision. Events
// are adapter-only and excluded.
func digest(pattern string, cfg Config, rev uint64) [digestSize]byte {
	var buf []byte
	put := func(s string) {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}

	buf = binary.AppendUvarint(buf, rev)
	put(pattern)
	put(cfg.Placeholder)
	put(cfg.PlaceholderChar)
	put(string(cfg.ValueMode))

	switch {
	case cfg.ClearOnBlur == nil:
		buf = append(buf, 0)
	case *cfg.ClearOnBlur:
		buf = append(buf, 1)
	default:
		buf = append(buf, 2)
	}

	defs := make([]Definition, len(cfg.Definitions))
	copy(defs, cfg.Definitions)
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Token < defs[j].Token })
	for _, d := range defs {
		put(d.Token)
		put(d.Class)
	}

	return blake2b.Sum256(buf)
}
