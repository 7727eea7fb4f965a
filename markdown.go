package chatblocks

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	markdownEscaper = strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"[", `\[`,
		"]", `\]`,
		"`", "\\`",
		"<", `\<`,
	)

	// 行首会被 CommonMark 识别为块结构的标记
	blockStartRe = regexp.MustCompile(`^([ \t]*)(\d+)([.)])`)
	blockCharRe  = regexp.MustCompile(`^([ \t]*)([#>+\-=|])`)
)

// Markdown 将块序列重新序列化为 CommonMark 文本（用于“复制消息”）
//
// 每个段落单独成段；每个连续列表重新从 1 编号；图片和视频以 Markdown
// 图片/链接形式追加在末尾。
func Markdown(blocks ParsedMessage) string {
	parts := make([]string, 0, len(blocks))
	var run []string

	flush := func() {
		if len(run) > 0 {
			parts = append(parts, strings.Join(run, "\n"))
			run = nil
		}
	}

	for _, block := range blocks {
		switch b := block.(type) {
		case *Paragraph:
			flush()
			parts = append(parts, escapeBlockStart(markdownSpans(b.Spans)))
		case *ListItem:
			if b.Ordinal == 1 {
				flush()
			}
			run = append(run, strconv.Itoa(b.Ordinal)+". "+markdownSpans(b.Spans))
		case *ImageGallery:
			flush()
			for _, img := range b.Images {
				parts = append(parts, "!["+markdownEscaper.Replace(img.AltText)+"]("+markdownURL(img.URL)+")")
			}
		case *VideoGallery:
			flush()
			for _, v := range b.Videos {
				target := v.OriginalURL
				if target == "" {
					target = v.URL
				}
				parts = append(parts, "[Video]("+markdownURL(target)+")")
			}
		}
	}
	flush()
	return strings.Join(parts, "\n\n")
}

func markdownSpans(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			b.WriteString("**")
			b.WriteString(markdownEscaper.Replace(sp.Text))
			b.WriteString("**")
		case SpanLink:
			b.WriteString("[")
			b.WriteString(markdownEscaper.Replace(sp.Text))
			b.WriteString("](")
			b.WriteString(markdownURL(sp.URL))
			b.WriteString(")")
		default:
			b.WriteString(markdownEscaper.Replace(sp.Text))
		}
	}
	return b.String()
}

func markdownURL(u string) string {
	if strings.ContainsAny(u, " ()<>") {
		return "<" + strings.NewReplacer("<", "%3C", ">", "%3E").Replace(u) + ">"
	}
	return u
}

// escapeBlockStart keeps a paragraph from being read back as a list, heading
// or quote. Leading whitespace is dropped since CommonMark would read four
// spaces as a code block.
func escapeBlockStart(line string) string {
	line = strings.TrimLeft(line, " \t")
	if m := blockStartRe.FindStringSubmatchIndex(line); m != nil {
		return line[:m[6]] + `\` + line[m[6]:]
	}
	if m := blockCharRe.FindStringSubmatchIndex(line); m != nil {
		return line[:m[4]] + `\` + line[m[4]:]
	}
	return line
}
