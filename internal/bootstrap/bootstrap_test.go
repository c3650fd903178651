package bootstrap

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/classworks/internal/pkg/helpers"
)

func TestLoadConfigAndSetupLogger_MissingFileUsesDefaults(t *testing.T) {
	cfg, _, err := LoadConfigAndSetupLogger(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "UAH", cfg.Report.Currency)
	assert.Equal(t, 100, cfg.Bank.CreditMultiplier)
}

func TestBuildDependencies(t *testing.T) {
	cfg, _, err := LoadConfigAndSetupLogger(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, zerolog.Nop(), helpers.FixedClock(helpers.Date(2024, time.May, 15)))
	require.NoError(t, err)

	assert.Len(t, deps.Repos.HospitalRepository.Reports(), 5)
	assert.Len(t, deps.Repos.BankRepository.Clients(), 4)
	assert.Empty(t, deps.Repos.ServiceCenterRepository.Reports(), "file backed exercises load on run")
	assert.Equal(t, cfg.ServiceCenter.OutputDir, deps.ServiceCenterFiles.BasePath())
	assert.Equal(t, cfg.University.OutputDir, deps.UniversityFiles.BasePath())

	var out bytes.Buffer
	require.NoError(t, SetupRouter(deps).Dispatch(context.Background(), "bookstore", &out))
	assert.Contains(t, out.String(), "- USA: 60 UAH\n")
}

func TestBuildDependencies_InvalidCollation(t *testing.T) {
	cfg, _, err := LoadConfigAndSetupLogger(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Report.Collation = "not a language tag"

	deps, err := BuildDependencies(cfg, zerolog.Nop(), nil)
	assert.Nil(t, deps)
	assert.ErrorContains(t, err, "collation")
}
