package converter

import (
	"regexp"
	"strings"

	"github.com/riverfjs/chatblocks-go/internal/buffer"
	"github.com/riverfjs/chatblocks-go/internal/types"
	"github.com/riverfjs/chatblocks-go/internal/util"
)

type Span = types.Span

var (
	// **bold**，内容非空，非贪婪
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// [label](url) 或可带 🔗 前缀的裸 http(s) 链接
	linkRe = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\s]+)\)|(?:🔗\x{FE0F}?[ \t]*)?(https?://[^\s<>"'\[\]]+)`)
)

// Line 将一行拆分为有序的行内片段：先提取粗体，再在纯文本片段中提取链接
func Line(line string) []Span {
	return Links(Bold(line))
}

// Bold 从左到右扫描 **...**，其余部分保留为 Text 片段
func Bold(line string) []Span {
	spans := make([]Span, 0)
	cursor := 0
	for _, loc := range boldRe.FindAllStringSubmatchIndex(line, -1) {
		if loc[0] > cursor {
			spans = append(spans, textSpan(line[cursor:loc[0]]))
		}
		spans = append(spans, Span{
			Kind: types.SpanBold,
			Text: line[loc[2]:loc[3]],
			Raw:  line[loc[0]:loc[1]],
		})
		cursor = loc[1]
	}
	if cursor < len(line) || len(spans) == 0 {
		spans = append(spans, textSpan(line[cursor:]))
	}
	return spans
}

// Links 只细化 Text 片段，Bold 与 Link 片段原样保留
func Links(spans []Span) []Span {
	result := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Kind != types.SpanText {
			result = append(result, sp)
			continue
		}
		result = append(result, splitLinks(sp.Raw)...)
	}
	return result
}

func splitLinks(text string) []Span {
	locs := linkRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []Span{textSpan(text)}
	}

	spans := make([]Span, 0, 2*len(locs)+1)
	cursor := 0
	for _, loc := range locs {
		if loc[0] < cursor {
			continue
		}
		link, end, ok := linkAt(text, loc)
		if !ok {
			continue
		}
		if loc[0] > cursor {
			spans = append(spans, textSpan(text[cursor:loc[0]]))
		}
		spans = append(spans, link)
		cursor = end
	}
	if cursor < len(text) {
		spans = append(spans, textSpan(text[cursor:]))
	}
	if len(spans) == 0 {
		return []Span{textSpan(text)}
	}
	return spans
}

// linkAt builds the link for one match and returns where the link ends in text.
func linkAt(text string, loc []int) (Span, int, bool) {
	// markdown [label](url)
	if loc[2] >= 0 {
		u := text[loc[4]:loc[5]]
		if !util.IsWebURL(u) && !strings.HasPrefix(u, "mailto:") {
			return Span{}, 0, false
		}
		return Span{
			Kind: types.SpanLink,
			Text: text[loc[2]:loc[3]],
			URL:  u,
			Raw:  text[loc[0]:loc[1]],
		}, loc[1], true
	}

	// bare url, trailing punctuation goes back to the prose
	u := util.TrimTrailingPunct(text[loc[6]:loc[7]])
	if !util.IsWebURL(u) {
		return Span{}, 0, false
	}
	end := loc[6] + len(u)
	return Span{
		Kind: types.SpanLink,
		Text: u,
		URL:  u,
		Raw:  text[loc[0]:end],
	}, end, true
}

func textSpan(s string) Span {
	return Span{Kind: types.SpanText, Text: s, Raw: s}
}

// Source 拼接片段的源文本，得到切分前的原始行
func Source(spans []Span) string {
	buf := buffer.New()
	for _, sp := range spans {
		buf.Write(sp.Raw)
	}
	return buf.String()
}

// Plain 拼接片段的可见文本
func Plain(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
