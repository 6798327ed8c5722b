package cache

import "strings"

const (
	GlobalKeyPrefix = "naplanprep"

	ServiceCatalog      = "catalog"
	ServiceSync         = "sync"
	ServiceEntitlements = "entitlements"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// BundleListKey holds every active bundle as one JSON document.
func BundleListKey() string {
	return GenerateCacheKey(ServiceCatalog, "bundles", "all")
}

// BundleKey holds a single bundle.
func BundleKey(bundleID string) string {
	return GenerateCacheKey(ServiceCatalog, "bundle", bundleID)
}

// SyncLockKey guards catalog syncs across processes.
func SyncLockKey() string {
	return GenerateCacheKey(ServiceSync, "lock", "catalog")
}

// ChildQuizzesKey holds the entitled quiz ids of a child.
func ChildQuizzesKey(childID string) string {
	return GenerateCacheKey(ServiceEntitlements, "child", childID)
}
