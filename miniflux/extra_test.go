package miniflux

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_KeepsUnknownFields(t *testing.T) {
	body := `{"id":42,"title":"x","hide_globally":true,"no_media_player":true,"fetch_via_proxy":true,
		"category":{"id":3,"title":"News","user_id":1,"hide_globally":false}}`
	client, _ := newTestClient(t, http.StatusOK, body)

	feed, err := client.Feed(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "x", feed.Title)
	assert.Len(t, feed.Extra, 3)

	var hidden bool
	ok, err := feed.Extra.Get("hide_globally", &hidden)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, hidden)

	data, err := json.Marshal(feed)
	require.NoError(t, err)

	var members map[string]any
	require.NoError(t, json.Unmarshal(data, &members))
	assert.Equal(t, true, members["hide_globally"])
	assert.Equal(t, true, members["no_media_player"])
	assert.Equal(t, true, members["fetch_via_proxy"])
	assert.Equal(t, float64(42), members["id"])
	assert.Equal(t, false, members["category"].(map[string]any)["hide_globally"])
}

func TestEntry_KeepsUnknownFields(t *testing.T) {
	var entry Entry
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"t","tags":[],"custom":{"a":1}}`), &entry))

	assert.Equal(t, int64(7), entry.ID)
	assert.JSONEq(t, `{"a":1}`, string(entry.Extra["custom"]))

	data, err := json.Marshal(&entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"custom":{"a":1}`)
}

func TestRecords_NoUnknownFields(t *testing.T) {
	var user User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"username":"admin"}`), &user))
	assert.Nil(t, user.Extra)
}

func TestUpdateFeed_SendsExtraSettings(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, `{}`)

	title := "Renamed"
	changes := &FeedModificationRequest{Title: &title}
	require.NoError(t, changes.Extra.Set("hide_globally", true))

	_, err := client.UpdateFeed(context.Background(), 42, changes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed","hide_globally":true}`, rec.Body)
}

func TestUpdateUser_SendsExtraSettings(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, `{"id":2,"username":"bob","gesture_nav":"tap"}`)

	req := &UserModificationRequest{}
	require.NoError(t, req.Extra.Set("gesture_nav", "tap"))

	user, err := client.UpdateUser(context.Background(), 2, req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gesture_nav":"tap"}`, rec.Body)

	var nav string
	ok, err := user.Extra.Get("gesture_nav", &nav)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tap", nav)
}

func TestExtra_StructFieldsWin(t *testing.T) {
	feed := Feed{ID: 1, Title: "real", Extra: Extra{"title": json.RawMessage(`"shadow"`)}}

	data, err := json.Marshal(feed)
	require.NoError(t, err)

	var members map[string]any
	require.NoError(t, json.Unmarshal(data, &members))
	assert.Equal(t, "real", members["title"])
}
