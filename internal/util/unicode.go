package util

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// YouTubeEmbedPrefix is the canonical embeddable form of a YouTube video.
const YouTubeEmbedPrefix = "https://www.youtube.com/embed/"

// trailingPunct is stripped from bare URLs captured out of prose.
const trailingPunct = ".,;:!?"

var youtubeIDPattern = regexp.MustCompile(
	`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?(?:[^#\s]*&)?v=|shorts/)|youtu\.be/)([A-Za-z0-9_-]+)`,
)

// TruncateRunes cuts s to at most limit runes and appends ellipsis when
// anything was removed. A non-positive limit disables truncation.
func TruncateRunes(s string, limit int, ellipsis string) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ellipsis
}

// TrimTrailingPunct removes sentence punctuation that a bare URL commonly
// swallows from the surrounding prose. A closing parenthesis is only removed
// when it has no opening partner inside the URL.
func TrimTrailingPunct(s string) string {
	for {
		trimmed := strings.TrimRight(s, trailingPunct)
		if strings.HasSuffix(trimmed, ")") && strings.Count(trimmed, "(") < strings.Count(trimmed, ")") {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// IsWebURL reports whether s parses as an absolute http(s) URL with a host.
func IsWebURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// YouTubeID returns the video id for watch, shorts and youtu.be links,
// or "" when s is not a YouTube video link.
func YouTubeID(s string) string {
	m := youtubeIDPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// YouTubeEmbedURL rewrites a YouTube link into its embeddable form.
// The second result is false for anything that is not a YouTube video link.
func YouTubeEmbedURL(s string) (string, bool) {
	id := YouTubeID(s)
	if id == "" {
		return s, false
	}
	return YouTubeEmbedPrefix + id, true
}

// IsEmbeddable reports whether embedURL is already in canonical embed form.
func IsEmbeddable(embedURL string) bool {
	return strings.HasPrefix(embedURL, YouTubeEmbedPrefix) && len(embedURL) > len(YouTubeEmbedPrefix)
}
