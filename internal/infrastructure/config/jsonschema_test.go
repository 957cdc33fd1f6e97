package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSchema_AllTargets(t *testing.T) {
	for _, target := range SchemaTargets() {
		t.Run(string(target), func(t *testing.T) {
			data, err := MarshalSchema(target)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(data, &doc))
			assert.Equal(t, "https://github.com/bnema/paneshell/"+string(target)+".schema.json", doc["$id"])
			assert.NotEmpty(t, doc["title"])
		})
	}
}

func TestMarshalSchema_ConfigMentionsSections(t *testing.T) {
	data, err := MarshalSchema(SchemaConfig)
	require.NoError(t, err)

	for _, key := range []string{"animation", "panes", "downloads", "archive", "eval", "step_delay_ms"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
}

func TestGenerateSchema_UnknownTarget(t *testing.T) {
	_, err := GenerateSchema("bogus")
	require.Error(t, err)
}
