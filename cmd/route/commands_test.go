package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router:\n  timezone: Europe/Amsterdam\n  model_enabled: false\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTextCommand(t *testing.T) {
	cfg := writeConfig(t)

	out := execute(t, "text", "--config", cfg, "--domain", "rail", "laat het vertrekbord van station almere muziekwijk zien")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "compiled", res["state"])
	assert.Equal(t, "deterministic", res["source"])
	assert.Equal(t, "departures.list", res["plan"].(map[string]any)["action"])
}

func TestTextCommand_Degraded(t *testing.T) {
	cfg := writeConfig(t)

	out := execute(t, "text", "--config", cfg, "--domain", "agenda", "hmm")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "degraded", res["state"])
	assert.Equal(t, "ambiguous input", res["reason"])
	assert.NotEmpty(t, res["clarification"])
}

func TestDomainsCommand(t *testing.T) {
	out := execute(t, "domains", "--config", writeConfig(t))
	assert.Equal(t, "agenda\nrail\n", out)
}

func TestPromptCommand(t *testing.T) {
	out := execute(t, "prompt", "--config", writeConfig(t), "--domain", "agenda", "zet gym morgen")
	assert.Contains(t, out, "agenda.intent.v1")
	assert.Contains(t, out, "User message:\nzet gym morgen")
}
