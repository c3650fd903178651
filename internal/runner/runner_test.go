package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/classworks/internal/pkg/apperrors"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

var fixedNow = helpers.FixedClock(helpers.Date(2024, time.May, 15))

// writeConfig points the file based exercises at the repository test fixtures
func writeConfig(t *testing.T) (path, outputDir string) {
	t.Helper()
	dir := t.TempDir()
	outputDir = filepath.Join(dir, "output")

	content := fmt.Sprintf(`logging:
  level: error
  format: json
report:
  currency: UAH
  collation: uk
service_center:
  input_dir: ../app/repositories/testdata/servicecenter
  output_dir: %s
university:
  input_dir: ../app/repositories/testdata/university
  output_dir: %s
`, filepath.Join(outputDir, "servicecenter"), filepath.Join(outputDir, "university"))

	path = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, outputDir
}

func TestApp_RunsSingleExercise(t *testing.T) {
	path, _ := writeConfig(t)

	var out bytes.Buffer
	err := NewApp(&out, fixedNow).RunContext(context.Background(), []string{"classworks", "--config", path, "hospital"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Task 1:\n- Doctor5 has made 2500 UAH.\n"))
	assert.Contains(t, out.String(), "- John has spent 100 UAH.\n")
}

func TestApp_RunsAll(t *testing.T) {
	path, outputDir := writeConfig(t)

	var out bytes.Buffer
	err := NewApp(&out, fixedNow).RunContext(context.Background(), []string{"classworks", "-c", path, "all"})
	require.NoError(t, err)

	for _, name := range []string{"hospital", "bookstore", "servicecenter", "university", "computers", "bank"} {
		assert.Contains(t, out.String(), "=== "+name+" ===\n")
	}

	for _, file := range []string{
		filepath.Join(outputDir, "servicecenter", "Task1.csv"),
		filepath.Join(outputDir, "servicecenter", "Task2.xml"),
		filepath.Join(outputDir, "servicecenter", "Task3.xml"),
		filepath.Join(outputDir, "university", "Task1.xml"),
	} {
		assert.FileExists(t, file)
	}
}

func TestApp_RejectsArguments(t *testing.T) {
	path, _ := writeConfig(t)

	err := NewApp(&bytes.Buffer{}, fixedNow).RunContext(context.Background(), []string{"classworks", "--config", path, "bank", "extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}

func TestApp_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  credit_multiplier: -1\n"), 0o644))

	err := NewApp(&bytes.Buffer{}, fixedNow).RunContext(context.Background(), []string{"classworks", "--config", path, "bank"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRunner_UnknownExercise(t *testing.T) {
	path, _ := writeConfig(t)

	r, err := NewRunner(path, fixedNow)
	require.NoError(t, err)

	err = r.Run(context.Background(), "library", &bytes.Buffer{})
	assert.True(t, errors.Is(err, apperrors.ErrUnknownExercise))
}
