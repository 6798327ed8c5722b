package pricing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"naplan-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	src := `
currency: AUD
years:
  3:
    A: 4900
    b: 7900
    tier_c: 9900
  7:
    A: 5900
`
	table, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	price, ok := table.Price(3, domain.TierB)
	assert.True(t, ok)
	assert.Equal(t, int64(7900), price)

	price, ok = table.Price(3, domain.TierC)
	assert.True(t, ok)
	assert.Equal(t, int64(9900), price)

	_, ok = table.Price(7, domain.TierB)
	assert.False(t, ok)

	assert.Equal(t, []int{5, 9}, MissingYears(table))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty", "currency: AUD\n", "no years"},
		{"bad year", "years:\n  4:\n    A: 100\n", "invalid year level 4"},
		{"bad tier", "years:\n  3:\n    D: 100\n", "unknown tier"},
		{"zero price", "years:\n  3:\n    A: 0\n", "must be positive"},
		{"not yaml", "years: [", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years:\n  5:\n    A: 1000\n"), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, table.HasYear(5))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_ShippedTable(t *testing.T) {
	table, err := LoadFile("../../configs/pricing.yaml")
	require.NoError(t, err)
	assert.Empty(t, MissingYears(table))
}
