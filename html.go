package chatblocks

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// RenderHTML 将展示单元输出为可直接嵌入页面的安全 HTML 片段
//
// 所有文本都经过转义；危险协议（javascript: 等）的链接降级为纯文本。
// 连续的 ListRowUnit 合并为一个 <ol>，Index 回到 1 时开始新的列表。
func RenderHTML(units []Unit) string {
	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ol>\n")
			inList = false
		}
	}

	for _, u := range units {
		switch v := u.(type) {
		case *ParagraphUnit:
			closeList()
			b.WriteString("<p>")
			writeInlines(&b, v.Inlines)
			b.WriteString("</p>\n")
		case *ListRowUnit:
			if inList && v.Index == 1 {
				closeList()
			}
			if !inList {
				b.WriteString("<ol>\n")
				inList = true
			}
			fmt.Fprintf(&b, "<li value=\"%d\">", v.Index)
			writeInlines(&b, v.Inlines)
			b.WriteString("</li>\n")
		case *ImageGalleryUnit:
			closeList()
			writeImageGallery(&b, v)
		case *VideoGalleryUnit:
			closeList()
			writeVideoGallery(&b, v)
		}
	}
	closeList()
	return b.String()
}

func writeInlines(b *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch in.Kind {
		case InlineEmphasis:
			b.WriteString("<strong>")
			b.Write(util.EscapeHTML([]byte(in.Text)))
			b.WriteString("</strong>")
		case InlineLink:
			if html.IsDangerousURL([]byte(in.URL)) {
				b.Write(util.EscapeHTML([]byte(in.Text)))
				continue
			}
			b.WriteString(`<a href="`)
			b.Write(escapeURL(in.URL))
			b.WriteString(`" target="_blank" rel="noopener noreferrer"`)
			if in.Truncated {
				b.WriteString(` title="`)
				b.Write(escapeURL(in.URL))
				b.WriteString(`"`)
			}
			b.WriteString(">")
			b.Write(util.EscapeHTML([]byte(in.Text)))
			b.WriteString("</a>")
		default:
			b.Write(util.EscapeHTML([]byte(in.Text)))
		}
	}
}

func writeImageGallery(b *strings.Builder, g *ImageGalleryUnit) {
	fmt.Fprintf(b, "<div class=\"image-gallery\" data-count=\"%d\">\n", g.Count)
	for _, img := range g.Images {
		b.WriteString(`<img src="`)
		b.Write(escapeURL(img.URL))
		b.WriteString(`" alt="`)
		b.Write(util.EscapeHTML([]byte(img.Alt)))
		b.WriteString(`" loading="lazy" onerror="`)
		switch img.Fallback {
		case FallbackHide:
			b.WriteString(`this.style.display='none'`)
		default:
			b.WriteString(`this.onerror=null;this.src='`)
			b.WriteString(img.Placeholder)
			b.WriteString(`'`)
		}
		b.WriteString("\">\n")
	}
	b.WriteString("</div>\n")
}

func writeVideoGallery(b *strings.Builder, g *VideoGalleryUnit) {
	fmt.Fprintf(b, "<div class=\"video-gallery\" data-count=\"%d\">\n", g.Count)
	for _, v := range g.Videos {
		if v.Presentation == PresentEmbedded {
			b.WriteString(`<iframe src="`)
			b.Write(escapeURL(v.EmbedURL))
			b.WriteString("\" allowfullscreen></iframe>\n")
		}
		if html.IsDangerousURL([]byte(v.OriginalURL)) {
			continue
		}
		b.WriteString(`<a href="`)
		b.Write(escapeURL(v.OriginalURL))
		b.WriteString("\" target=\"_blank\" rel=\"noopener noreferrer\">Open video</a>\n")
	}
	b.WriteString("</div>\n")
}

// escapeURL percent-encodes and then HTML-escapes a URL for use in an attribute.
func escapeURL(u string) []byte {
	return util.EscapeHTML(util.URLEscape([]byte(u), false))
}
