package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestEncryptDecrypt(t *testing.T) {
	key, cipher, algo = "cli-test-key", "AES-256-GCM", "SHA256"
	t.Cleanup(func() { key, cipher, algo = "", "", "" })

	value, err := run(t, encryptCmd(), `{"username":"muhammetsafak"}`)
	require.NoError(t, err)
	require.NotEmpty(t, value)

	decoded, err := run(t, decryptCmd(), "", value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"muhammetsafak"}`, decoded)

	key = "another-key"
	_, err = run(t, decryptCmd(), "", value)
	assert.Error(t, err)
}

func TestEncrypt_InvalidJSON(t *testing.T) {
	key = "cli-test-key"
	t.Cleanup(func() { key = "" })

	_, err := run(t, encryptCmd(), "", "not json")
	assert.Error(t, err)
}

func TestKeygen(t *testing.T) {
	first, err := run(t, keygenCmd(), "")
	require.NoError(t, err)
	second, err := run(t, keygenCmd(), "")
	require.NoError(t, err)

	assert.Len(t, first, 44)
	assert.NotEqual(t, first, second)
}

func TestVersion(t *testing.T) {
	out, err := run(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "segmentctl version dev", out)
}

func TestParseValues(t *testing.T) {
	values, err := parseValues(`{"visits":3,"ratio":0.5,"nested":{"n":[1,"x"]}}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"visits": 3,
		"ratio":  0.5,
		"nested": map[string]any{"n": []any{1, "x"}},
	}, values)
}
