package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	e := New(InquiryReceived, map[string]interface{}{"inquiry_id": "42", "website": "buildchem"})

	raw, err := Encode(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"INQUIRY_RECEIVED"`)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, InquiryReceived, got.EventType())
	assert.Equal(t, "buildchem", got.Payload()["website"])
	assert.True(t, e.Timestamp().Equal(got.Timestamp()))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), New(CatalogRequestSubmitted, nil)))
}
