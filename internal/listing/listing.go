// Package listing resolves property listing URLs into forecast inputs. The
// lookup is mocked: no request goes out to the portal. A deterministic
// pseudo-listing is derived from the URL so repeated lookups agree, and
// results are cached behind the Cache interface.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"net/url"
	"strings"

	"github.com/avanzyl/property-forecast/internal/config"
	"go.uber.org/zap"
)

// supportedHosts are the listing portals the lookup accepts.
var supportedHosts = map[string]struct{}{
	"property24.com":        {},
	"privateproperty.co.za": {},
	"gumtree.co.za":         {},
}

// ErrUnsupportedURL is returned when the URL is not a usable listing link.
type ErrUnsupportedURL struct {
	URL    string
	Reason string
}

func (e *ErrUnsupportedURL) Error() string {
	return fmt.Sprintf("unsupported listing URL %q: %s", e.URL, e.Reason)
}

// Service performs listing lookups with caching.
type Service struct {
	cache  Cache
	logger *zap.Logger
}

// NewService creates a lookup service. A nil cache falls back to an
// in-process cache and a nil logger to a no-op logger.
func NewService(cache Cache, logger *zap.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cache: cache, logger: logger}
}

// Lookup resolves a listing URL into a property input. The same URL always
// resolves to the same property.
func (s *Service) Lookup(ctx context.Context, rawURL string) (config.Property, error) {
	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return config.Property{}, err
	}

	cacheKey := "listing:" + normalized
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var property config.Property
		if err := json.Unmarshal([]byte(cached), &property); err == nil {
			s.logger.Debug("listing cache hit",
				zap.String("op", "listing.Lookup"),
				zap.String("url", normalized),
			)
			return property, nil
		}
		// Unreadable cache entries are regenerated below.
	}

	property := mockProperty(normalized)

	if encoded, err := json.Marshal(property); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(encoded)); err != nil {
			s.logger.Warn("failed to cache listing lookup",
				zap.String("op", "listing.Lookup"),
				zap.String("url", normalized),
				zap.Error(err),
			)
		}
	}

	s.logger.Debug("listing resolved",
		zap.String("op", "listing.Lookup"),
		zap.String("url", normalized),
		zap.Float64("purchasePrice", property.PurchasePrice),
	)
	return property, nil
}

// normalizeURL validates the listing URL and reduces it to a canonical
// scheme-less form used for hashing and cache keys.
func normalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", &ErrUnsupportedURL{URL: rawURL, Reason: "empty URL"}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", &ErrUnsupportedURL{URL: rawURL, Reason: "not a valid URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &ErrUnsupportedURL{URL: rawURL, Reason: "scheme must be http or https"}
	}

	host := strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))
	if _, ok := supportedHosts[host]; !ok {
		return "", &ErrUnsupportedURL{URL: rawURL, Reason: "host is not a supported listing portal"}
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return "", &ErrUnsupportedURL{URL: rawURL, Reason: "URL has no listing path"}
	}

	return host + "/" + path, nil
}

// mockProperty derives a plausible listing from the normalized URL. The hash
// spreads listings across a realistic price and rent range.
func mockProperty(normalized string) config.Property {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalized))
	seed := h.Sum64()

	// Price between R750k and R5.25m, in R10k steps.
	price := 750000 + float64(seed%450)*10000
	deposit := math.Round(price * 0.10)

	// Prime-linked rate between 10.50% and 13.49%.
	rate := 10.5 + float64((seed>>8)%300)/100

	term := 20
	if (seed>>4)%2 == 1 {
		term = 30
	}

	// Gross yield between 7% and 9% of price, as monthly rent.
	rent := math.Round(price * float64(7+(seed>>16)%3) / 100 / 12)

	types := []string{"Apartment", "House", "Townhouse"}
	locations := []string{
		"Sea Point, Cape Town",
		"Umhlanga, Durban",
		"Sandton, Johannesburg",
		"Stellenbosch, Western Cape",
	}

	segments := strings.Split(normalized, "/")
	name := fmt.Sprintf("Listing %s", segments[len(segments)-1])

	return config.Property{
		Name:            name,
		Active:          true,
		PurchasePrice:   price,
		Deposit:         deposit,
		InterestRate:    rate,
		LoanTermYears:   term,
		MonthlyLevies:   math.Round(price * 0.0014),
		MonthlyRates:    math.Round(price * 0.0009),
		ExpectedRent:    rent,
		VacancyRate:     5,
		MaintenanceRate: 1,
		PropertyType:    types[int((seed>>24)%3)],
		Location:        locations[int((seed>>32)%4)],
		Bedrooms:        int(1 + (seed>>40)%4),
		Bathrooms:       int(1 + (seed>>44)%3),
	}
}
