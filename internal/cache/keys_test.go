package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "catalog",
			objectType:  "bundle",
			identifier:  "year3_a",
			paramsKey:   nil,
			expectedKey: "naplanprep:catalog:bundle:year3_a",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "catalog",
			objectType:  "bundle",
			identifier:  "year3_a",
			paramsKey:   []string{},
			expectedKey: "naplanprep:catalog:bundle:year3_a",
		},
		{
			name:        "with one paramsKey",
			serviceName: "catalog",
			objectType:  "bundles",
			identifier:  "all",
			paramsKey:   []string{"year5"},
			expectedKey: "naplanprep:catalog:bundles:all:year5",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "entitlements",
			objectType:  "child",
			identifier:  "c1",
			paramsKey:   []string{"year3", "a", "lower"},
			expectedKey: "naplanprep:entitlements:child:c1:year3_a_lower",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestNamedKeys(t *testing.T) {
	cases := map[string]string{
		BundleListKey():          "naplanprep:catalog:bundles:all",
		BundleKey("year9_c"):     "naplanprep:catalog:bundle:year9_c",
		SyncLockKey():            "naplanprep:sync:lock:catalog",
		ChildQuizzesKey("kid-1"): "naplanprep:entitlements:child:kid-1",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("key = %q, want %q", got, want)
		}
	}
}
