package domain

import (
	"strings"
	"time"
)

// SocialPost is a public feed post matched for a disaster.
type SocialPost struct {
	URI       string
	CID       string
	Text      string
	Author    string
	Timestamp time.Time
}

// SearchKeywords derives feed search terms from a disaster's title and tags:
// lowercased, trimmed, blanks dropped, first occurrence wins, at most limit.
func SearchKeywords(title string, tags []string, limit int) []string {
	seen := make(map[string]struct{}, len(tags)+1)
	keywords := make([]string, 0, min(limit, len(tags)+1))

	for _, raw := range append([]string{title}, tags...) {
		if len(keywords) == limit {
			break
		}
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	return keywords
}

// DedupePosts drops posts whose uri and text both match an earlier post.
func DedupePosts(posts []SocialPost) []SocialPost {
	type key struct{ uri, text string }

	seen := make(map[key]struct{}, len(posts))
	out := make([]SocialPost, 0, len(posts))
	for _, p := range posts {
		k := key{p.URI, p.Text}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// AsReport converts a post into a pending report for disasterID.
func (p SocialPost) AsReport(disasterID string) NewReport {
	return NewReport{
		DisasterID: disasterID,
		UserID:     p.Author,
		Content:    p.Text,
		SourceURI:  p.URI,
		CreatedAt:  p.Timestamp,
	}
}
