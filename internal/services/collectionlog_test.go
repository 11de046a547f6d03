package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionLogTestClient(t *testing.T, h http.Handler) *CollectionLogClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewCollectionLogClient(&config.Config{CollectionLogBaseURL: srv.URL})
}

func TestRecentItems(t *testing.T) {
	client := collectionLogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/items/recent/Foo%20Bar", r.URL.EscapedPath())
		fmt.Fprint(w, `{"items":[
			{"id":11832,"name":"Bandos chestplate","quantity":1,"obtained":true,"obtainedAt":"2025-06-01T12:00:00Z"}
		]}`)
	}))

	log, err := client.RecentItems(context.Background(), "Foo Bar")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, "Foo Bar", log.Nickname)
	require.Len(t, log.RecentItems, 1)
	assert.Equal(t, "Bandos chestplate", log.RecentItems[0].Name)
}

func TestRecentItemsUpstreamFailureIsSoft(t *testing.T) {
	client := collectionLogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	log, err := client.RecentItems(context.Background(), "Nobody")
	assert.NoError(t, err)
	assert.Nil(t, log)
}

func TestRecentItemsEmptyUsername(t *testing.T) {
	client := collectionLogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("empty username must not hit the network")
	}))

	log, err := client.RecentItems(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, log)
}
