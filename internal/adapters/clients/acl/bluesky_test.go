package acl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const searchBody = `{"posts":[
	{"uri":"at://did:plc:a/app.bsky.feed.post/1","cid":"c1",
	 "author":{"did":"did:plc:a","handle":"citizen1.bsky.social"},
	 "record":{"text":"Need food in Lower East Side #floodrelief","createdAt":"2025-06-17T10:00:00.000Z"},
	 "indexedAt":"2025-06-17T10:00:01.000Z"},
	{"uri":"at://did:plc:b/app.bsky.feed.post/2","cid":"c2",
	 "author":{"did":"did:plc:b"},
	 "record":{"text":"Shelter open at PS 20"},
	 "indexedAt":"2025-06-17T11:00:00.000Z"},
	{"uri":"at://did:plc:c/app.bsky.feed.post/3","cid":"c3",
	 "author":{"did":"did:plc:c","handle":"empty.bsky.social"},
	 "record":{"text":"   "}}
],"cursor":"3"}`

func TestBlueskyAdapter_SearchPostsAnonymous(t *testing.T) {
	var gotQuery, gotLimit, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, blueskySearchPath, r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer server.Close()

	adapter := NewBlueskyAdapter(testClient(t, "bluesky", server.URL), BlueskyCredentials{}, discardLogger())

	posts, err := adapter.SearchPosts(context.Background(), "nyc flood", 10)
	require.NoError(t, err)

	assert.Equal(t, "nyc flood", gotQuery)
	assert.Equal(t, "10", gotLimit)
	assert.Empty(t, gotAuth)

	require.Len(t, posts, 2)
	assert.Equal(t, domain.SocialPost{
		URI:       "at://did:plc:a/app.bsky.feed.post/1",
		CID:       "c1",
		Text:      "Need food in Lower East Side #floodrelief",
		Author:    "citizen1.bsky.social",
		Timestamp: time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC),
	}, posts[0])
	assert.Equal(t, "did:plc:b", posts[1].Author)
	assert.Equal(t, time.Date(2025, 6, 17, 11, 0, 0, 0, time.UTC), posts[1].Timestamp)
}

func TestBlueskyAdapter_SessionLoginAndRefresh(t *testing.T) {
	var logins, searches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case blueskySessionPath:
			n := atomic.AddInt32(&logins, 1)
			var req blueskySessionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "relief.bsky.social", req.Identifier)
			assert.Equal(t, "app-pass", req.Password)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"accessJwt": "jwt-" + string(rune('0'+n)),
				"handle":    "relief.bsky.social",
			})
		case blueskySearchPath:
			n := atomic.AddInt32(&searches, 1)
			// The first token expires after one search.
			if n == 2 && r.Header.Get("Authorization") == "Bearer jwt-1" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"ExpiredToken","message":"Token has expired"}`))
				return
			}
			_, _ = w.Write([]byte(`{"posts":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter := NewBlueskyAdapter(testClient(t, "bluesky", server.URL), BlueskyCredentials{
		Identifier:  "relief.bsky.social",
		AppPassword: "app-pass",
	}, discardLogger())

	_, err := adapter.SearchPosts(context.Background(), "flood", 10)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins))

	_, err = adapter.SearchPosts(context.Background(), "flood", 10)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
	assert.Equal(t, int32(3), atomic.LoadInt32(&searches))
}

func TestBlueskyAdapter_LoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"AuthenticationRequired","message":"Invalid identifier or password"}`))
	}))
	defer server.Close()

	adapter := NewBlueskyAdapter(testClient(t, "bluesky", server.URL), BlueskyCredentials{
		Identifier:  "relief.bsky.social",
		AppPassword: "wrong",
	}, discardLogger())

	_, err := adapter.SearchPosts(context.Background(), "flood", 10)
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "Invalid identifier or password")
}

func TestPostTime(t *testing.T) {
	want := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, want, postTime("2025-06-17T10:00:00Z", "garbage"))
	assert.Equal(t, want, postTime("", "2025-06-17T12:00:00+02:00"))
	assert.True(t, postTime("", "").IsZero())
}
