package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const (
	blueskySearchPath  = "/xrpc/app.bsky.feed.searchPosts"
	blueskySessionPath = "/xrpc/com.atproto.server.createSession"
)

// BlueskyCredentials log the adapter in with an app password. Leave
// Identifier empty to search anonymously.
type BlueskyCredentials struct {
	Identifier  string
	AppPassword string
}

// BlueskyAdapter implements ports.SocialFeed over the AT Protocol search API.
type BlueskyAdapter struct {
	BaseAdapter
	creds  BlueskyCredentials
	logger *slog.Logger

	mu        sync.Mutex
	accessJwt string
}

// NewBlueskyAdapter creates a feed adapter. The client's BaseURL should be
// an AppView (public.api.bsky.app) for anonymous use, or the account's PDS
// when credentials are set.
func NewBlueskyAdapter(client *clients.Client, creds BlueskyCredentials, logger *slog.Logger) *BlueskyAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlueskyAdapter{
		BaseAdapter: NewBaseAdapter(client),
		creds:       creds,
		logger:      logger.With(slog.String("component", "acl.BlueskyAdapter")),
	}
}

type blueskySearchResponse struct {
	Posts  []blueskyPost `json:"posts"`
	Cursor string        `json:"cursor"`
}

type blueskyPost struct {
	URI    string `json:"uri"`
	CID    string `json:"cid"`
	Author struct {
		DID    string `json:"did"`
		Handle string `json:"handle"`
	} `json:"author"`
	Record struct {
		Text      string `json:"text"`
		CreatedAt string `json:"createdAt"`
	} `json:"record"`
	IndexedAt string `json:"indexedAt"`
}

type blueskySessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"` //nolint:gosec // request field, redacted in logs
}

type blueskySession struct {
	AccessJwt string `json:"accessJwt"`
	Handle    string `json:"handle"`
}

// SearchPosts returns up to limit posts matching keyword.
// Implements ports.SocialFeed.
func (a *BlueskyAdapter) SearchPosts(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error) {
	posts, err := a.search(ctx, keyword, limit)
	if err != nil && a.authenticated() && IsAuthError(err) {
		a.logger.InfoContext(ctx, "bluesky session rejected, logging in again")
		a.resetSession()
		posts, err = a.search(ctx, keyword, limit)
	}
	return posts, err
}

func (a *BlueskyAdapter) search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error) {
	token, err := a.session(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"q":     {keyword},
		"limit": {strconv.Itoa(limit)},
	}
	req, err := a.Client().NewRequest(ctx, http.MethodGet, blueskySearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.DoRequest(ctx, req, "search posts")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[blueskySearchResponse](resp.Body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	posts, skipped := TranslateSlice(ext.Posts, translatePost)
	if skipped > 0 {
		a.logger.DebugContext(ctx, "skipped unusable posts",
			slog.String("keyword", keyword),
			slog.Int("skipped", skipped),
		)
	}

	return posts, nil
}

func (a *BlueskyAdapter) authenticated() bool {
	return a.creds.Identifier != ""
}

// session returns the current access token, logging in first if needed.
// Anonymous adapters get an empty token.
func (a *BlueskyAdapter) session(ctx context.Context) (string, error) {
	if !a.authenticated() {
		return "", nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessJwt != "" {
		return a.accessJwt, nil
	}

	body, err := a.PostJSON(ctx, blueskySessionPath, blueskySessionRequest{
		Identifier: a.creds.Identifier,
		Password:   a.creds.AppPassword,
	}, "create session")
	if err != nil {
		return "", err
	}

	sess, err := DecodeResponse[blueskySession](body)
	if err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), err.Error())
	}
	if sess.AccessJwt == "" {
		return "", domain.NewUnavailableError(a.ServiceName(), "session has no access token")
	}

	a.logger.InfoContext(ctx, "bluesky session created", slog.String("handle", sess.Handle))
	a.accessJwt = sess.AccessJwt

	return a.accessJwt, nil
}

func (a *BlueskyAdapter) resetSession() {
	a.mu.Lock()
	a.accessJwt = ""
	a.mu.Unlock()
}

func translatePost(p *blueskyPost) (*domain.SocialPost, error) {
	if err := ValidateRequired(p.URI, "uri"); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(p.Record.Text)
	if err := ValidateRequired(text, "text"); err != nil {
		return nil, err
	}

	author := p.Author.Handle
	if author == "" {
		author = p.Author.DID
	}

	return &domain.SocialPost{
		URI:       p.URI,
		CID:       p.CID,
		Text:      text,
		Author:    author,
		Timestamp: postTime(p.Record.CreatedAt, p.IndexedAt),
	}, nil
}

// postTime prefers the author-declared creation time and falls back to the
// index time.
func postTime(candidates ...string) time.Time {
	for _, c := range candidates {
		if t, err := time.Parse(time.RFC3339Nano, c); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
