package model

import (
	"strings"

	"github.com/openiio/iio-go/pkg/specparse"
)

// ResolveChannelID resolves the measurement kind and axis/component
// modifier encoded in a channel id against the registry tables in
// package specparse.
//
// The id grammar follows the sysfs naming convention: a kind name with
// an optional instance number ("voltage0"), optionally a differential
// pair ("voltage0-voltage1"), optionally an underscore-separated
// modifier suffix ("accel_x", "intensity_ir"). Unrecognized parts
// resolve to "".
func ResolveChannelID(id string) (kind, modifier string) {
	reg := specparse.DefaultChannelRegistry()

	base := id
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[:i]
	}

	segs := strings.Split(base, "_")
	first := strings.TrimRight(segs[0], "0123456789")
	for _, k := range reg.Kinds {
		if first == k {
			kind = k
			break
		}
	}

	if len(segs) > 1 {
		// Modifier names may themselves contain underscores
		// ("north_magn"), so match the longest suffix.
		for _, m := range reg.Modifiers {
			if strings.HasSuffix(base, "_"+m) && len(m) > len(modifier) {
				modifier = m
			}
		}
	}

	return kind, modifier
}
