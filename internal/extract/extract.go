// Package extract pulls image and video references out of a raw reply and
// returns the prose that is left once they are removed.
package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/chatblocks-go/internal/buffer"
	"github.com/riverfjs/chatblocks-go/internal/types"
	"github.com/riverfjs/chatblocks-go/internal/util"
)

// Result is the outcome of one extraction pass.
type Result struct {
	Cleaned string
	Images  []types.MediaRef
	Videos  []types.MediaRef
	// Dropped lists candidates that matched a pattern but carried no usable URL.
	Dropped []Dropped
}

// Dropped describes a rejected media candidate.
type Dropped struct {
	Rule  string
	Kind  types.MediaKind
	Start int
	Match string
}

// candidate is what a rule produces for one regexp match.
type candidate struct {
	url string
	alt string
	end int // exclusive end of the accepted match after punctuation trimming
	// skip marks a match that is not a media reference at all; it is neither
	// extracted nor reported as dropped.
	skip bool
}

type rule struct {
	name    string
	kind    types.MediaKind
	pattern *regexp.Regexp
	build   func(src string, loc []int) candidate
}

var (
	imageSentinelRe = regexp.MustCompile(`🖼\x{FE0F}?[ \t]*Image URL:[ \t]*(\S*)`)
	videoSentinelRe = regexp.MustCompile(`🎥\x{FE0F}?[ \t]*Video URL:[ \t]*(\S*)`)

	markdownImageRe = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\s]*)\)`)
	imageLabelRe    = regexp.MustCompile(`Image:[ \t]*(\S+)`)
	imageJSONRe     = regexp.MustCompile(`"?imageUrl"?[ \t]*:[ \t]*"([^"\n]*)"`)

	videoLabelRe    = regexp.MustCompile(`Video:[ \t]*(\S+)`)
	markdownVideoRe = regexp.MustCompile(`\[Video[^\]\n]*\]\(([^)\s]*)\)`)
	youtubeBareRe   = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?|shorts/)|youtu\.be/)[^\s)\]]+`)
)

// imageRules and videoRules are evaluated in priority order; the first rule
// that yields a URL wins its position in the output.
var imageRules = []rule{
	{name: "image_sentinel", kind: types.MediaImage, pattern: imageSentinelRe, build: bareGroup(1)},
	{name: "markdown_image", kind: types.MediaImage, pattern: markdownImageRe, build: markdownImage},
	{name: "image_label", kind: types.MediaImage, pattern: imageLabelRe, build: bareGroup(1)},
	{name: "image_json", kind: types.MediaImage, pattern: imageJSONRe, build: wholeGroup(1)},
}

var videoRules = []rule{
	{name: "video_sentinel", kind: types.MediaVideo, pattern: videoSentinelRe, build: bareGroup(1)},
	{name: "video_label", kind: types.MediaVideo, pattern: videoLabelRe, build: bareGroup(1)},
	{name: "markdown_video", kind: types.MediaVideo, pattern: markdownVideoRe, build: wholeGroup(1)},
	{name: "youtube_bare", kind: types.MediaVideo, pattern: youtubeBareRe, build: bareYouTube},
}

// bareGroup captures an unbracketed URL, giving trailing punctuation back to the prose.
func bareGroup(g int) func(string, []int) candidate {
	return func(src string, loc []int) candidate {
		s, e := loc[2*g], loc[2*g+1]
		if s < 0 {
			return candidate{end: loc[1]}
		}
		u := util.TrimTrailingPunct(src[s:e])
		return candidate{url: u, end: s + len(u)}
	}
}

// wholeGroup captures a delimited URL; the whole match is consumed.
func wholeGroup(g int) func(string, []int) candidate {
	return func(src string, loc []int) candidate {
		s, e := loc[2*g], loc[2*g+1]
		if s < 0 {
			return candidate{end: loc[1]}
		}
		return candidate{url: strings.TrimSpace(src[s:e]), end: loc[1]}
	}
}

func markdownImage(src string, loc []int) candidate {
	c := wholeGroup(2)(src, loc)
	if loc[2] >= 0 {
		c.alt = strings.TrimSpace(src[loc[2]:loc[3]])
	}
	return c
}

// bareYouTube accepts a free-standing watch, shorts or youtu.be link that
// carries a video id. Links written as [label](url) or after the 🔗 glyph are
// left to the inline link stage.
func bareYouTube(src string, loc []int) candidate {
	if !standsAlone(src[:loc[0]]) {
		return candidate{skip: true}
	}
	c := bareGroup(0)(src, loc)
	if util.YouTubeID(c.url) == "" {
		return candidate{skip: true}
	}
	return c
}

// standsAlone reports whether a URL starting right after before is not part
// of a markdown link, a 🔗 link or a longer word or URL.
func standsAlone(before string) bool {
	if before == "" {
		return true
	}
	if strings.HasSuffix(before, "](") {
		return false
	}
	glyph := strings.TrimSuffix(strings.TrimRight(before, " \t"), "\uFE0F")
	if strings.HasSuffix(glyph, "🔗") {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(before)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !strings.ContainsRune("/.:@=&?#%-_", r)
}

// span is a half-open byte range of the source scheduled for removal.
type span struct{ start, end int }

// state is threaded through the fold over rules and matches.
type state struct {
	refs    []types.MediaRef
	seen    map[string]bool
	remove  []span
	dropped []Dropped
}

// Extract scans raw for media references and strips them from the text.
func Extract(raw string) Result {
	images := fold(raw, imageRules)
	videos := fold(raw, videoRules)

	remove := append(append([]span{}, images.remove...), videos.remove...)
	cleaned := cut(raw, remove)
	cleaned = imageSentinelRe.ReplaceAllString(cleaned, "")
	cleaned = videoSentinelRe.ReplaceAllString(cleaned, "")

	return Result{
		Cleaned: cleaned,
		Images:  images.refs,
		Videos:  videos.refs,
		Dropped: append(images.dropped, videos.dropped...),
	}
}

func fold(raw string, rules []rule) state {
	st := state{seen: make(map[string]bool)}
	for _, r := range rules {
		for _, loc := range r.pattern.FindAllStringSubmatchIndex(raw, -1) {
			st = step(st, raw, r, loc)
		}
	}
	return st
}

func step(st state, raw string, r rule, loc []int) state {
	c := r.build(raw, loc)
	if c.skip {
		return st
	}
	ref, key, ok := toRef(r.kind, c)
	if !ok {
		st.dropped = append(st.dropped, Dropped{Rule: r.name, Kind: r.kind, Start: loc[0], Match: raw[loc[0]:loc[1]]})
		return st
	}
	ref.MatchStart = loc[0]
	ref.MatchLength = c.end - loc[0]
	st.remove = append(st.remove, span{start: loc[0], end: c.end})
	if st.seen[key] {
		return st
	}
	st.seen[key] = true
	st.refs = append(st.refs, ref)
	return st
}

// toRef validates a candidate and returns the ref together with its dedup key.
func toRef(kind types.MediaKind, c candidate) (types.MediaRef, string, bool) {
	if c.url == "" {
		return types.MediaRef{}, "", false
	}
	switch kind {
	case types.MediaImage:
		if !util.IsWebURL(c.url) {
			return types.MediaRef{}, "", false
		}
		return types.MediaRef{Kind: kind, URL: c.url, AltText: c.alt}, dedupKey(c.url), true
	default:
		embed, isYouTube := util.YouTubeEmbedURL(c.url)
		if !isYouTube && !util.IsWebURL(c.url) {
			return types.MediaRef{}, "", false
		}
		ref := types.MediaRef{Kind: kind, URL: c.url, EmbedURL: embed, OriginalURL: c.url}
		return ref, dedupKey(embed), true
	}
}

func dedupKey(u string) string {
	return norm.NFC.String(strings.TrimSpace(u))
}

// cut returns raw with every span removed; overlapping spans are merged.
func cut(raw string, spans []span) string {
	if len(spans) == 0 {
		return raw
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end > spans[j].end
		}
		return spans[i].start < spans[j].start
	})

	buf := buffer.New()
	cursor := 0
	for _, s := range spans {
		if s.end <= cursor {
			continue
		}
		if s.start > cursor {
			buf.Write(raw[cursor:s.start])
		}
		cursor = s.end
	}
	if cursor < len(raw) {
		buf.Write(raw[cursor:])
	}
	return buf.String()
}
