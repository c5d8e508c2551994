package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCommand(t *testing.T) {
	cmd := root().cmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"schema"})
	require.NoError(t, cmd.Execute())

	var s map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.Equal(t, "Invoice build request", s["title"])

	props, ok := s["properties"].(map[string]any)
	require.True(t, ok)
	for _, k := range []string{"items", "meta", "supplier", "customer"} {
		assert.Contains(t, props, k)
	}
	items, ok := props["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", items["type"])
}
