package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareRequestValidate(t *testing.T) {
	for _, body := range []string{
		`{}`, `{"content":null}`, `{"content":""}`, `{"type":"text"}`,
		`{"content":false}`, `{"content":0}`, `{"content":0.0}`, `{"content":[]}`, `{"content":{}}`,
	} {
		var req ShareRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)

		err := req.Validate()
		ve, ok := AsValidation(errors.Wrap(err, "submit"))
		require.True(t, ok, body)
		assert.Equal(t, "content", ve.Field)
		assert.Equal(t, MsgContentRequired, ve.Message)
	}

	for _, body := range []string{`{"content":"hi"}`, `{"content":42}`, `{"content":true}`, `{"content":[0]}`, `{"content":{"a":1}}`} {
		var req ShareRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.NoError(t, req.Validate(), body)
	}
}

func TestShareRequestItemKeepsNonStringValues(t *testing.T) {
	var req ShareRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":{"a": 1},"type":5,"timestamp":null}`), &req))

	it := req.Item()
	assert.Equal(t, `{"a":1}`, it.Content)
	assert.Equal(t, "5", string(it.Type))
	assert.Equal(t, "5", it.TypeLabel())
	assert.Nil(t, it.Timestamp)
}

func TestNewShareRequest(t *testing.T) {
	req := NewShareRequest("say \"hi\"", ContentTypeText, json.RawMessage(`1`))
	require.NoError(t, req.Validate())

	it := req.Item()
	assert.Equal(t, `say "hi"`, it.Content)
	assert.Equal(t, "text", it.TypeLabel())
	assert.Equal(t, "1", string(it.Timestamp))

	assert.Nil(t, NewShareRequest("x", "", nil).Type)
}

func TestSharedItemJSONKeepsAbsentFieldsAsNull(t *testing.T) {
	var req ShareRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"hi"}`), &req))

	it := req.Item()
	it.ID = 1
	it.ReceivedAt = "2024-01-01T00:00:00.000000"

	b, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"content":"hi","type":null,"timestamp":null,"receivedAt":"2024-01-01T00:00:00.000000"}`, string(b))
}

func TestSharedItemJSONKeepsTimestampVerbatim(t *testing.T) {
	var req ShareRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"hi","type":"text","timestamp":1704067200000}`), &req))

	b, err := json.Marshal(req.Item())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "text", got["type"])
	assert.Equal(t, "text", req.Item().TypeLabel())
	assert.Equal(t, float64(1704067200000), got["timestamp"])
}

func TestFormatLocalRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)
	s := FormatLocal(now)
	assert.Len(t, s, len(ISOLocalLayout))

	back, err := ParseLocal(s)
	require.NoError(t, err)
	assert.True(t, back.Equal(now), "%s != %s", back, now)
}
