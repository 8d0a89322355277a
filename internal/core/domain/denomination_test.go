package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Equal(t, []int64{1000, 500, 100}, catalog.Values())
	assert.Equal(t, 3, catalog.Len())
	assert.True(t, catalog.Contains(500))
	assert.False(t, catalog.Contains(200))

	denominations := catalog.Denominations()
	assert.Equal(t, "1000元", denominations[0].Label)
}

func TestNewCatalog_SortsDescending(t *testing.T) {
	catalog, err := domain.NewCatalog([]domain.Denomination{
		{Value: 100, Label: "100元"},
		{Value: 1000, Label: "1000元"},
		{Value: 500, Label: "500元"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1000, 500, 100}, catalog.Values())
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := domain.NewCatalog(nil)
	assert.Error(t, err)

	_, err = domain.NewCatalog([]domain.Denomination{{Value: 0, Label: "zero"}})
	assert.Error(t, err)

	_, err = domain.NewCatalog([]domain.Denomination{{Value: -100, Label: "neg"}})
	assert.Error(t, err)

	_, err = domain.NewCatalog([]domain.Denomination{{Value: 100, Label: ""}})
	assert.Error(t, err)

	_, err = domain.NewCatalog([]domain.Denomination{
		{Value: 100, Label: "a"},
		{Value: 100, Label: "b"},
	})
	assert.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`denominations:
  - value: 2000
    label: "2000元"
  - value: 200
    label: "200元"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	catalog, err := domain.LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{2000, 200}, catalog.Values())
	assert.Equal(t, "2000元", catalog.Denominations()[0].Label)
}

func TestLoadCatalogFile_Errors(t *testing.T) {
	_, err := domain.LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("denominations: [not a mapping"), 0o600))
	_, err = domain.LoadCatalogFile(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("denominations: []"), 0o600))
	_, err = domain.LoadCatalogFile(empty)
	assert.Error(t, err)
}
