package pricing

import (
	"strings"
	"unicode"

	"rotaclick/internal/domain/entities"
)

const cepLength = 8

func digitsOnly(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ' ':
		default:
			return "", false
		}
	}
	return b.String(), true
}

// NormalizeCEP accepts "01310-100", "01310100" or "01.310-100" and returns
// the 8 digits.
func NormalizeCEP(raw string) (string, error) {
	d, ok := digitsOnly(raw)
	if !ok || len(d) != cepLength {
		return "", ErrInvalidZipCode
	}
	return d, nil
}

// ParseZipRange builds a route range. Without end, start may be a CEP prefix
// (1 to 8 digits). With end, both must be full CEPs and start <= end.
func ParseZipRange(start, end string) (entities.ZipRange, error) {
	s, ok := digitsOnly(start)
	if !ok || len(s) == 0 || len(s) > cepLength {
		return entities.ZipRange{}, ErrInvalidZipRange
	}
	if strings.TrimSpace(end) == "" {
		return entities.ZipRange{Start: s}, nil
	}

	if len(s) != cepLength {
		return entities.ZipRange{}, ErrInvalidZipRange
	}
	e, err := NormalizeCEP(end)
	if err != nil {
		return entities.ZipRange{}, ErrInvalidZipRange
	}
	// Fixed width digits compare correctly as strings.
	if e < s {
		return entities.ZipRange{}, ErrInvalidZipRange
	}
	if e == s {
		return entities.ZipRange{Start: s}, nil
	}
	return entities.ZipRange{Start: s, End: e}, nil
}

// ZipRangeContains reports whether a normalized CEP falls in the range.
func ZipRangeContains(r entities.ZipRange, cep string) bool {
	if r.Start == "" || len(cep) != cepLength {
		return false
	}
	if r.End == "" {
		return strings.HasPrefix(cep, r.Start)
	}
	return cep >= r.Start && cep <= r.End
}

// RouteMatches reports whether the route serves the origin/destination pair.
func RouteMatches(route entities.FreightRoute, originCEP, destCEP string) bool {
	return ZipRangeContains(route.Origin, originCEP) && ZipRangeContains(route.Destination, destCEP)
}

// ZipRangeKey is a stable textual form used for upsert identity.
func ZipRangeKey(r entities.ZipRange) string {
	if r.End == "" {
		return r.Start
	}
	return r.Start + ".." + r.End
}
