package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefDecodesBareID(t *testing.T) {
	var ref Ref[Owner]
	require.NoError(t, json.Unmarshal([]byte(`"owner-1"`), &ref))

	assert.Equal(t, "owner-1", ref.ID())
	_, populated := ref.Populated()
	assert.False(t, populated)
	assert.False(t, ref.IsZero())
}

func TestRefDecodesPopulatedEntity(t *testing.T) {
	var ref Ref[Owner]
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"owner-1","firstName":"Dana"}`), &ref))

	assert.Equal(t, "owner-1", ref.ID())
	owner, populated := ref.Populated()
	require.True(t, populated)
	assert.Equal(t, "Dana", owner.FirstName)
}

func TestRefRoundTripsInsideParent(t *testing.T) {
	raw := []byte(`{"_id":"call-1","companyId":"co-1","title":"Kickoff","callType":"outbound","status":"scheduled","startTime":"2026-03-01T10:00:00Z","callOwner":"owner-9","reminder":true,"createdAt":"2026-02-01T09:00:00Z"}`)

	var call Call
	require.NoError(t, json.Unmarshal(raw, &call))
	assert.Equal(t, "owner-9", call.CallOwner.ID())

	encoded, err := json.Marshal(call)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"callOwner":"owner-9"`)
}

func TestRefZeroValueIsOmitted(t *testing.T) {
	var ref Ref[Owner]
	assert.True(t, ref.IsZero())
	assert.Equal(t, "", ref.ID())
}
