package models_test

import (
	"encoding/json"
	"testing"

	"formhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJSONValueScanValidJSON(t *testing.T) {
	var v models.JSONValue
	err := v.Scan(`{"q1":"x","q2":42}`)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"q1":"x","q2":42}`, string(v))

	err = v.Scan([]byte(`["a","b"]`))
	assert.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(v))
}

func TestJSONValueScanMalformedFallsBackToString(t *testing.T) {
	var v models.JSONValue
	err := v.Scan("not {valid json")
	assert.NoError(t, err)

	// The raw column content comes back as a plain JSON string.
	var s string
	assert.NoError(t, json.Unmarshal(v, &s))
	assert.Equal(t, "not {valid json", s)
}

func TestJSONValueScanNil(t *testing.T) {
	v := models.JSONValue(`{"old":1}`)
	assert.NoError(t, v.Scan(nil))
	assert.Empty(t, []byte(v))
}

func TestJSONValueValue(t *testing.T) {
	var empty models.JSONValue
	val, err := empty.Value()
	assert.NoError(t, err)
	assert.Nil(t, val)

	v := models.JSONValue(`[1,2,3]`)
	val, err = v.Value()
	assert.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, val)
}

func TestJSONValueRoundTrip(t *testing.T) {
	in := []byte(`{"labels":["a","b"],"questions":[{"q":"Name?"}]}`)

	var doc struct {
		Labels    models.JSONValue `json:"labels"`
		Questions models.JSONValue `json:"questions"`
	}
	assert.NoError(t, json.Unmarshal(in, &doc))

	out, err := json.Marshal(doc)
	assert.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestJSONValuePresent(t *testing.T) {
	assert.False(t, models.JSONValue(nil).Present())
	assert.False(t, models.JSONValue(`null`).Present())
	assert.True(t, models.JSONValue(`0`).Present())
	assert.True(t, models.JSONValue(`[]`).Present())
	assert.True(t, models.JSONValue(`{"q":"a"}`).Present())
}
