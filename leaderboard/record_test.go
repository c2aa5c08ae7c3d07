// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMarshalKeepsOrder(t *testing.T) {
	rec := Record{Fields: []Field{
		{Key: "z", Value: "1"},
		{Key: ColName, Value: "سارة"},
		{Key: "a", Value: `quote " and \ slash`},
	}}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.Equal(t, `{"z":"1","الأسم":"سارة","a":"quote \" and \\ slash"}`, string(data))
}

func TestRecordMarshalEmpty(t *testing.T) {
	data, err := json.Marshal([]Record{{}})
	require.NoError(t, err)
	assert.Equal(t, `[{}]`, string(data))
}

func TestRecordUnmarshal(t *testing.T) {
	var recs []Record
	err := json.Unmarshal([]byte(`[{"b":"2","a":"1"},{}]`), &recs)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, []string{"b", "a"}, recs[0].Keys())
	assert.Equal(t, "1", recs[0].Get("a"))
	assert.Empty(t, recs[1].Fields)
}

func TestRecordUnmarshalRejectsNonObject(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &rec))
}

func TestRecordGetMissing(t *testing.T) {
	rec := Record{Fields: []Field{{Key: "a", Value: "1"}}}
	assert.Equal(t, "", rec.Get("b"))
}
