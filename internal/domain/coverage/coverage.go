// Package coverage answers the marketing site's "do you serve my area" check
// against the static service-area ZIP list.
package coverage

import "strings"

// Area is the immutable service-area ZIP allow-list, loaded once at startup.
type Area struct {
	zips map[string]struct{}
}

// NewArea builds an Area from a ZIP list. Entries are normalized to their
// five-digit prefix; blanks are dropped.
func NewArea(zips []string) *Area {
	set := make(map[string]struct{}, len(zips))
	for _, z := range zips {
		if n := normalize(z); n != "" {
			set[n] = struct{}{}
		}
	}
	return &Area{zips: set}
}

// Covers reports whether the ZIP is inside the service area.
func (a *Area) Covers(zip string) bool {
	_, ok := a.zips[normalize(zip)]
	return ok
}

// ParseZIPList splits a comma-separated ZIP list, as configured via env.
func ParseZIPList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalize reduces a ZIP to its five-digit prefix (ZIP+4 inputs match their
// base ZIP). Returns "" for anything that isn't five leading digits.
func normalize(zip string) string {
	zip = strings.TrimSpace(zip)
	if i := strings.IndexByte(zip, '-'); i >= 0 {
		zip = zip[:i]
	}
	if len(zip) != 5 {
		return ""
	}
	for i := 0; i < len(zip); i++ {
		if zip[i] < '0' || zip[i] > '9' {
			return ""
		}
	}
	return zip
}
