package ecckd

import (
	"strconv"
	"strings"
)

// ParsePath parses a derivation path such as m/44'/0'/0'/0/1.  Hardened
// indexes are marked with a trailing ' or h.  The leading m is optional.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "m" {
		return []uint32{}, nil
	}
	path = strings.TrimPrefix(path, "m/")

	parts := strings.Split(path, "/")
	res := make([]uint32, 0, len(parts))
	for _, p := range parts {
		var hardened bool
		if strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H") {
			hardened = true
			p = p[:len(p)-1]
		}
		v, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return nil, ErrInvalidPath
		}
		i := uint32(v)
		if hardened {
			i |= HardenedBit
		}
		res = append(res, i)
	}
	return res, nil
}
