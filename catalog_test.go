package flyweight

import (
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_MarshalJSON(t *testing.T) {
	registry := NewRegistry()

	data, err := registry.MarshalJSON()
	require.NoError(t, err)
	ja := jsonassert.New(t)
	ja.Assertf(string(data), `{
		"infantry":  {"name": "Light infantry", "speed": 20, "force": 10},
		"transport": {"name": "Transport vehicles", "speed": 70, "force": 0},
		"equipment": {"name": "Unearthly military equipment", "speed": 15, "force": 150},
		"aircraft":  {"name": "Aircraft", "speed": 300, "force": 100}
	}`)

	data, err = json.Marshal(registry)
	require.NoError(t, err)
	require.Equal(t, `{"aircraft":{"name":"Aircraft","speed":300,"force":100},`+
		`"equipment":{"name":"Unearthly military equipment","speed":15,"force":150},`+
		`"infantry":{"name":"Light infantry","speed":20,"force":10},`+
		`"transport":{"name":"Transport vehicles","speed":70,"force":0}}`, string(data))

	require.NoError(t, registry.Close())
	data, err = registry.MarshalJSON()
	require.NoError(t, err)
	ja.Assertf(string(data), `{}`)
}
