package localized

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
	}{
		{"null uses fallback", `null`, "item-gear", "item-gear"},
		{"plain string", `"Gear"`, "x", "Gear"},
		{"empty plain string is kept", `""`, "x", ""},
		{"english preferred", `{"de":"Zahnrad","en":"Gear"}`, "x", "Gear"},
		{"blank english skipped", `{"en":"  ","fr":"Engrenage","de":"Zahnrad"}`, "x", "Engrenage"},
		{"first non-empty in source order", `{"de":"Zahnrad","fr":"Engrenage"}`, "x", "Zahnrad"},
		{"all blank uses fallback", `{"en":"","de":" "}`, "x", "x"},
		{"number is absent", `42`, "x", "x"},
		{"non-string members ignored", `{"en":5,"de":"Zahnrad"}`, "x", "Zahnrad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &text))
			assert.Equal(t, tt.want, text.Resolve(tt.fallback))
		})
	}
}

func TestText_MissingFieldIsAbsent(t *testing.T) {
	var record struct {
		Name Text `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &record))

	assert.True(t, record.Name.IsAbsent())
	assert.Equal(t, "fallback", record.Name.Resolve("fallback"))
}

func TestText_MarshalKeepsOrder(t *testing.T) {
	text := FromEntries(Entry{Lang: "fr", Value: "Engrenage"}, Entry{Lang: "en", Value: "Gear"})

	data, err := json.Marshal(text)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fr":"Engrenage","en":"Gear"}`, string(data))
	assert.Equal(t, `{"fr":"Engrenage","en":"Gear"}`, string(data))

	data, err = json.Marshal(FromString("Gear"))
	require.NoError(t, err)
	assert.Equal(t, `"Gear"`, string(data))

	data, err = json.Marshal(Text{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
