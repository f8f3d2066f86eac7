package ucmdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"
)

// VersionTuple is the normalized form of a UCMDB version string. UCMDB uses
// two versioning schemes:
//
//   - YYYY.MM calendar releases ("2023.05" = May 2023)
//   - YY.Q quarterly content-pack releases ("24.2" = Q2 2024), where the
//     quarter maps to its first month: Q1=Jan, Q2=Apr, Q3=Jul, Q4=Oct
//
// Tuples order by Year, then Period, then Quarterly (false before true).
// The trailing flag means a calendar release compares strictly less than a
// quarterly release landing on the same (year, month) pair — "2023.01" sorts
// below "23.1" even though both denote January 2023. Existing callers depend
// on that exact ordering, so it is preserved rather than collapsed into an
// equivalence.
type VersionTuple struct {
	Year      int
	Period    int
	Quarterly bool
}

// quarterStartMonth maps a quarter index to the ordinal of its first month.
var quarterStartMonth = map[int]int{1: 1, 2: 4, 3: 7, 4: 10}

// Compare returns -1, 0, or 1 ordering t against other.
func (t VersionTuple) Compare(other VersionTuple) int {
	if t.Year != other.Year {
		if t.Year < other.Year {
			return -1
		}

		return 1
	}

	if t.Period != other.Period {
		if t.Period < other.Period {
			return -1
		}

		return 1
	}

	if t.Quarterly == other.Quarterly {
		return 0
	}

	if !t.Quarterly {
		return -1
	}

	return 1
}

// AtLeast reports whether t >= other.
func (t VersionTuple) AtLeast(other VersionTuple) bool {
	return t.Compare(other) >= 0
}

// String renders the tuple back into its source format.
func (t VersionTuple) String() string {
	if t.Quarterly {
		quarter := (t.Period-1)/3 + 1

		return fmt.Sprintf("%d.%d", t.Year-2000, quarter)
	}

	return fmt.Sprintf("%d.%02d", t.Year, t.Period)
}

// ParseVersion normalizes a version string in either supported format. A
// first component of 1000 or more selects the YYYY.MM calendar form;
// anything smaller is read as a two-digit year followed by a quarter index.
// Anything that is not exactly two dot-separated integers is a hard error,
// never a silent default.
func ParseVersion(version string) (VersionTuple, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 2 {
		return VersionTuple{}, fmt.Errorf("%w: %q", ErrMalformedVersion, version)
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return VersionTuple{}, fmt.Errorf("%w: %q", ErrMalformedVersion, version)
	}

	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return VersionTuple{}, fmt.Errorf("%w: %q", ErrMalformedVersion, version)
	}

	if first >= 1000 {
		return VersionTuple{Year: first, Period: second, Quarterly: false}, nil
	}

	period, ok := quarterStartMonth[second]
	if !ok {
		// Out-of-range quarter indexes pass through unmapped, matching the
		// server's own tolerance for them.
		period = second
	}

	return VersionTuple{Year: first + 2000, Period: period, Quarterly: true}, nil
}

// CompareVersions reports whether current >= required. Both arguments may use
// either version format.
func CompareVersions(current, required string) (bool, error) {
	currentTuple, err := ParseVersion(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version: %w", err)
	}

	requiredTuple, err := ParseVersion(required)
	if err != nil {
		return false, fmt.Errorf("parsing required version: %w", err)
	}

	return currentTuple.AtLeast(requiredTuple), nil
}

// VersionFetchFunc retrieves the server's version descriptor. Implementations
// are injected by the resource clients; the gate itself never talks to the
// network.
type VersionFetchFunc func(ctx context.Context) (*VersionInfo, error)

// VersionRequirement names an operation and the minimum server version it
// needs.
type VersionRequirement struct {
	Operation  string
	MinVersion string
	ServerID   string
}

// VersionGate decides whether an operation requiring a minimum server
// version may run, caching the resolved version per server so repeated gated
// calls do not re-query the server. Each client owns its own gate; two
// clients never share or cross-contaminate cached versions unless they are
// explicitly constructed over the same Cache.
type VersionGate struct {
	cache  Cache
	logger Logger
	group  singleflight.Group
}

// NewVersionGate creates a gate over the given cache backend. A nil cache
// gets an in-memory backend; a nil logger discards warnings.
func NewVersionGate(cache Cache, logger Logger) *VersionGate {
	if cache == nil {
		cache = NewMemoryCache(0)
	}

	if logger == nil {
		logger = NopLogger{}
	}

	return &VersionGate{cache: cache, logger: logger}
}

// Resolve returns the version string for serverID, fetching it at most once
// per cache lifetime. The content pack version is preferred because it
// matches the quarterly release format; the full server version is the
// fallback when no content pack is reported. Concurrent resolutions of the
// same uncached server are collapsed into a single fetch.
func (g *VersionGate) Resolve(ctx context.Context, serverID string, fetch VersionFetchFunc) (string, error) {
	if entry, err := g.cache.Get(ctx, versionCacheKey(serverID)); err == nil {
		return string(entry.Data), nil
	}

	value, err, _ := g.group.Do(serverID, func() (interface{}, error) {
		info, err := fetch(ctx)
		if err != nil {
			return "", fmt.Errorf("%w for %s: %w", ErrVersionResolution, serverID, err)
		}

		version := info.ContentPackVersion
		if version == "" {
			version = info.FullServerVersion
		}

		_ = g.cache.Set(ctx, versionCacheKey(serverID), &CacheEntry{Data: []byte(version)})

		return version, nil
	})
	if err != nil {
		return "", err
	}

	version, _ := value.(string)

	return version, nil
}

// Check applies the gating policy for one operation and returns nil when the
// operation may proceed.
//
// The two failure paths are deliberately asymmetric: a version that cannot be
// resolved at all (server unreachable, endpoint missing on old builds) is
// downgraded to a logged warning and the operation is allowed through, so
// version introspection being unavailable never breaks callers. A version
// that resolves and compares too low is a hard *VersionError. Unparseable
// version strings always propagate.
func (g *VersionGate) Check(ctx context.Context, req VersionRequirement, fetch VersionFetchFunc) error {
	current, err := g.Resolve(ctx, req.ServerID, fetch)
	if err != nil {
		g.logger.Warn("could not verify server version, proceeding without version check", map[string]interface{}{
			"operation": req.Operation,
			"server":    req.ServerID,
			"error":     err.Error(),
		})

		return nil
	}

	compatible, err := CompareVersions(current, req.MinVersion)
	if err != nil {
		return err
	}

	if !compatible {
		return &VersionError{
			Operation: req.Operation,
			Required:  req.MinVersion,
			Actual:    current,
			ServerID:  req.ServerID,
		}
	}

	return nil
}

// ClearCache forgets every resolved version. Use it after a server upgrade
// or for test isolation; the next gated call re-queries the server.
func (g *VersionGate) ClearCache() {
	_ = g.cache.Clear(context.Background())
}

func versionCacheKey(serverID string) string {
	return "version:" + serverID
}

// Gated wraps an operation in a version check, returning a guarded closure
// with the same signature. The zero value of T is returned alongside the
// gate's error when the check blocks the call.
func Gated[T any](gate *VersionGate, req VersionRequirement, fetch VersionFetchFunc, op func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if err := gate.Check(ctx, req, fetch); err != nil {
			var zero T

			return zero, err
		}

		return op(ctx)
	}
}
