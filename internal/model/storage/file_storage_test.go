package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/model/customerr"
)

type dirConfig string

func (d dirConfig) DataDir() string {
	return string(d)
}

func Test_OnSave_ShouldWriteLatestAndDatedSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := NewFileStorage(dirConfig(dir))
	table := rates.NewTable(time.Date(2025, 11, 3, 16, 0, 0, 0, time.UTC))
	table.Set("eur", "usd", decimal.RequireFromString("1.0842"))

	require.NoError(t, s.SaveTable(context.Background(), table))

	latest, err := os.ReadFile(filepath.Join(dir, "latest.json"))
	require.NoError(t, err)
	dated, err := os.ReadFile(filepath.Join(dir, "2025-11-03.json"))
	require.NoError(t, err)
	assert.Equal(t, latest, dated)
	assert.JSONEq(t, `{"date":"2025-11-03","rates":{"eur":{"usd":1.0842}}}`, string(latest))
	assert.Contains(t, string(latest), "\n  \"rates\"")
}

func Test_OnFetch_ShouldReadWrittenSnapshot(t *testing.T) {
	s := NewFileStorage(dirConfig(t.TempDir()))
	table := rates.NewTable(time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC))
	table.Set("eur", "gbp", decimal.RequireFromString("0.85"))
	require.NoError(t, s.SaveTable(context.Background(), table))

	got, err := s.Fetch(context.Background(), "2025-10-30")

	require.NoError(t, err)
	rate, ok := got.TryGet("eur", "gbp")
	assert.True(t, ok)
	assert.Equal(t, "0.85", rate.String())
}

func Test_OnFetchMissing_ShouldBeFetchFailed(t *testing.T) {
	_, err := NewFileStorage(dirConfig(t.TempDir())).Fetch(context.Background(), "latest")

	assert.True(t, errors.Is(err, customerr.ErrFetchFailed))
}

func Test_OnFetchGarbage_ShouldBeParseFailed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "latest.json"), []byte("<html>"), 0o644))

	_, err := NewFileStorage(dirConfig(dir)).Fetch(context.Background(), "latest")

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}
