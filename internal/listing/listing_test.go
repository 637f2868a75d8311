package listing

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

const sampleURL = "https://www.property24.com/for-sale/sea-point/cape-town/western-cape/11021/115838129"

func TestLookupDeterministic(t *testing.T) {
	service := NewService(NewMemoryCache(), zap.NewNop())
	ctx := context.Background()

	first, err := service.Lookup(ctx, sampleURL)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	second, err := service.Lookup(ctx, sampleURL)
	if err != nil {
		t.Fatalf("second Lookup failed: %v", err)
	}

	if first != second {
		t.Errorf("repeated lookup diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.PurchasePrice < 750000 || first.PurchasePrice > 5250000 {
		t.Errorf("PurchasePrice = %v, outside mock range", first.PurchasePrice)
	}
	if err := first.Validate(); err != nil {
		t.Errorf("mocked listing fails input validation: %v", err)
	}
}

// Lookups are deterministic across service instances, not just cached within
// one instance.
func TestLookupDeterministicAcrossInstances(t *testing.T) {
	ctx := context.Background()

	first, err := NewService(nil, nil).Lookup(ctx, sampleURL)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	second, err := NewService(nil, nil).Lookup(ctx, sampleURL)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if first != second {
		t.Errorf("lookup differs across instances")
	}
}

func TestLookupUsesCache(t *testing.T) {
	cache := NewMemoryCache()
	service := NewService(cache, nil)
	ctx := context.Background()

	if _, err := service.Lookup(ctx, sampleURL); err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	key := "listing:property24.com/for-sale/sea-point/cape-town/western-cape/11021/115838129"
	if _, ok := cache.Get(ctx, key); !ok {
		t.Errorf("lookup did not populate cache under %q", key)
	}
}

func TestLookupRejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"Empty", ""},
		{"Not a URL", "://nope"},
		{"Unsupported scheme", "ftp://property24.com/for-sale/1"},
		{"Unsupported host", "https://example.com/for-sale/1"},
		{"Missing listing path", "https://property24.com/"},
	}

	service := NewService(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Lookup(context.Background(), tt.url)
			if err == nil {
				t.Fatal("expected error")
			}
			var unsupported *ErrUnsupportedURL
			if !errors.As(err, &unsupported) {
				t.Errorf("error is %T, expected *ErrUnsupportedURL", err)
			}
		})
	}
}

// The www prefix and trailing slashes do not change the resolved listing.
func TestLookupNormalizesURL(t *testing.T) {
	service := NewService(nil, nil)
	ctx := context.Background()

	withWWW, err := service.Lookup(ctx, "https://www.property24.com/for-sale/1234/")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	withoutWWW, err := service.Lookup(ctx, "https://property24.com/for-sale/1234")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if withWWW != withoutWWW {
		t.Error("www prefix changed the resolved listing")
	}
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("empty cache reported a hit")
	}
	if err := cache.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, ok := cache.Get(ctx, "key")
	if !ok || val != "value" {
		t.Errorf("Get = (%q, %v), expected (value, true)", val, ok)
	}
}
