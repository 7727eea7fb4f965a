package extract

import (
	"strings"
	"testing"

	"github.com/riverfjs/chatblocks-go/internal/types"
)

// TestExtract_SentinelStripping 测试带标记的图片 URL 被移除
func TestExtract_SentinelStripping(t *testing.T) {
	raw := "Here: 🖼️ Image URL: https://x/y.png done"
	res := Extract(raw)

	if res.Cleaned != "Here:  done" {
		t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, "Here:  done")
	}
	if len(res.Images) != 1 {
		t.Fatalf("Extract() images = %d, want 1", len(res.Images))
	}
	img := res.Images[0]
	if img.URL != "https://x/y.png" {
		t.Errorf("image URL = %q, want %q", img.URL, "https://x/y.png")
	}
	wantStart := strings.Index(raw, "🖼")
	wantLen := len("🖼️ Image URL: https://x/y.png")
	if img.MatchStart != wantStart || img.MatchLength != wantLen {
		t.Errorf("image match = (%d, %d), want (%d, %d)", img.MatchStart, img.MatchLength, wantStart, wantLen)
	}
	if img.Kind != types.MediaImage {
		t.Errorf("image kind = %v, want image", img.Kind)
	}
}

// TestExtract_ImageForms 测试各种图片引用形式
func TestExtract_ImageForms(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantURLs    []string
		wantCleaned string
	}{
		{
			name:        "markdown image with alt",
			raw:         "look ![a cat](https://x/cat.png) here",
			wantURLs:    []string{"https://x/cat.png"},
			wantCleaned: "look  here",
		},
		{
			name:        "label form",
			raw:         "Image: https://x/a.png",
			wantURLs:    []string{"https://x/a.png"},
			wantCleaned: "",
		},
		{
			name:        "label form keeps trailing period",
			raw:         "Image: https://x/a.png.",
			wantURLs:    []string{"https://x/a.png"},
			wantCleaned: ".",
		},
		{
			name:        "json fragment",
			raw:         `{"imageUrl": "https://x/a.jpg"}`,
			wantURLs:    []string{"https://x/a.jpg"},
			wantCleaned: "{}",
		},
		{
			name:        "unquoted json key",
			raw:         `imageUrl: "https://x/a.jpg"`,
			wantURLs:    []string{"https://x/a.jpg"},
			wantCleaned: "",
		},
		{
			name:        "priority order beats position",
			raw:         "Image: https://x/b.png then 🖼️ Image URL: https://x/a.png",
			wantURLs:    []string{"https://x/a.png", "https://x/b.png"},
			wantCleaned: " then ",
		},
		{
			name:        "malformed label is dropped and kept as prose",
			raw:         "Image: not-a-url",
			wantURLs:    nil,
			wantCleaned: "Image: not-a-url",
		},
		{
			name:        "empty sentinel is stripped",
			raw:         "🖼️ Image URL:",
			wantURLs:    nil,
			wantCleaned: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw)
			if res.Cleaned != tt.wantCleaned {
				t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, tt.wantCleaned)
			}
			if len(res.Images) != len(tt.wantURLs) {
				t.Fatalf("Extract() images = %d, want %d", len(res.Images), len(tt.wantURLs))
			}
			for i, want := range tt.wantURLs {
				if res.Images[i].URL != want {
					t.Errorf("image[%d] = %q, want %q", i, res.Images[i].URL, want)
				}
			}
		})
	}
}

// TestExtract_MarkdownAlt 测试 Markdown 图片的 alt 文本
func TestExtract_MarkdownAlt(t *testing.T) {
	res := Extract("![a cat](https://x/cat.png)")
	if len(res.Images) != 1 {
		t.Fatalf("Extract() images = %d, want 1", len(res.Images))
	}
	if res.Images[0].AltText != "a cat" {
		t.Errorf("AltText = %q, want %q", res.Images[0].AltText, "a cat")
	}
}

// TestExtract_ImageDedup 测试同一 URL 以两种形式出现时只保留一个
func TestExtract_ImageDedup(t *testing.T) {
	res := Extract("![cat](https://x/cat.png)\nImage: https://x/cat.png")
	if len(res.Images) != 1 {
		t.Fatalf("Extract() images = %d, want 1", len(res.Images))
	}
	if res.Images[0].AltText != "cat" {
		t.Errorf("first-seen ref should win, got alt %q", res.Images[0].AltText)
	}
	if res.Cleaned != "\n" {
		t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, "\n")
	}
}

// TestExtract_YouTube 测试 YouTube 链接规范化
func TestExtract_YouTube(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEmbed string
		wantOrig  string
	}{
		{
			name:      "short link",
			raw:       "https://youtu.be/abc123",
			wantEmbed: "https://www.youtube.com/embed/abc123",
			wantOrig:  "https://youtu.be/abc123",
		},
		{
			name:      "watch link",
			raw:       "https://www.youtube.com/watch?v=abc123",
			wantEmbed: "https://www.youtube.com/embed/abc123",
			wantOrig:  "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:      "watch link with extra params",
			raw:       "https://www.youtube.com/watch?feature=share&v=abc123",
			wantEmbed: "https://www.youtube.com/embed/abc123",
			wantOrig:  "https://www.youtube.com/watch?feature=share&v=abc123",
		},
		{
			name:      "sentinel with youtube",
			raw:       "🎥 Video URL: https://youtu.be/abc123",
			wantEmbed: "https://www.youtube.com/embed/abc123",
			wantOrig:  "https://youtu.be/abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw)
			if len(res.Videos) != 1 {
				t.Fatalf("Extract() videos = %d, want 1", len(res.Videos))
			}
			v := res.Videos[0]
			if v.EmbedURL != tt.wantEmbed {
				t.Errorf("EmbedURL = %q, want %q", v.EmbedURL, tt.wantEmbed)
			}
			if v.OriginalURL != tt.wantOrig {
				t.Errorf("OriginalURL = %q, want %q", v.OriginalURL, tt.wantOrig)
			}
			if res.Cleaned != "" {
				t.Errorf("Extract() cleaned = %q, want empty", res.Cleaned)
			}
		})
	}
}

// TestExtract_VideoDedupByVideoID 测试同一视频的不同链接形式去重
func TestExtract_VideoDedupByVideoID(t *testing.T) {
	res := Extract("Video: https://www.youtube.com/watch?v=abc123 and https://youtu.be/abc123")
	if len(res.Videos) != 1 {
		t.Fatalf("Extract() videos = %d, want 1", len(res.Videos))
	}
	if res.Videos[0].OriginalURL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("OriginalURL = %q, want the label form", res.Videos[0].OriginalURL)
	}
	if res.Cleaned != " and " {
		t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, " and ")
	}
}

// TestExtract_NonEmbeddableVideo 测试非 YouTube 视频保持原样
func TestExtract_NonEmbeddableVideo(t *testing.T) {
	tests := []string{
		"🎥 Video URL: https://cdn.example.com/v.mp4",
		"Video: https://cdn.example.com/v.mp4",
		"[Video tour](https://cdn.example.com/v.mp4)",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			res := Extract(raw)
			if len(res.Videos) != 1 {
				t.Fatalf("Extract() videos = %d, want 1", len(res.Videos))
			}
			v := res.Videos[0]
			if v.URL != "https://cdn.example.com/v.mp4" || v.EmbedURL != v.URL || v.OriginalURL != v.URL {
				t.Errorf("video = %+v, want pass-through URLs", v)
			}
			if res.Cleaned != "" {
				t.Errorf("Extract() cleaned = %q, want empty", res.Cleaned)
			}
		})
	}
}

// TestExtract_Dropped 测试无效候选被记录
func TestExtract_Dropped(t *testing.T) {
	res := Extract("Video: soon")
	if len(res.Videos) != 0 {
		t.Errorf("Extract() videos = %d, want 0", len(res.Videos))
	}
	if len(res.Dropped) != 1 || res.Dropped[0].Rule != "video_label" {
		t.Errorf("Extract() dropped = %+v, want one video_label candidate", res.Dropped)
	}
}

// TestExtract_YouTubeInsideLinks 测试写成链接的 YouTube 地址保留在文本中
func TestExtract_YouTubeInsideLinks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "markdown link", raw: "Check [this tutorial](https://www.youtube.com/watch?v=abc123) now"},
		{name: "link glyph", raw: "Watch 🔗 https://youtu.be/abc123 today"},
		{name: "link glyph with variation selector", raw: "Watch 🔗\uFE0F https://youtu.be/abc123"},
		{name: "inside another url", raw: "https://example.com/?u=https://youtu.be/abc123"},
		{name: "lookalike host", raw: "https://notyoutube.com/watch?v=abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw)
			if len(res.Videos) != 0 {
				t.Errorf("Extract() videos = %+v, want none", res.Videos)
			}
			if res.Cleaned != tt.raw {
				t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, tt.raw)
			}
			if len(res.Dropped) != 0 {
				t.Errorf("Extract() dropped = %+v, want none", res.Dropped)
			}
		})
	}
}

// TestExtract_YouTubeBareBoundaries 测试独立出现的 YouTube 链接仍被提取
func TestExtract_YouTubeBareBoundaries(t *testing.T) {
	tests := []struct {
		raw         string
		wantCleaned string
	}{
		{raw: "(see https://youtu.be/abc123)", wantCleaned: "(see )"},
		{raw: "Watch:\nhttps://youtu.be/abc123", wantCleaned: "Watch:\n"},
		{raw: "clip [Video](https://youtu.be/abc123)", wantCleaned: "clip "},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := Extract(tt.raw)
			if len(res.Videos) != 1 || res.Videos[0].EmbedURL != "https://www.youtube.com/embed/abc123" {
				t.Fatalf("Extract() videos = %+v, want one abc123 embed", res.Videos)
			}
			if res.Cleaned != tt.wantCleaned {
				t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, tt.wantCleaned)
			}
		})
	}
}

// TestExtract_YouTubeWithoutVideoID 测试没有视频 ID 的 YouTube 链接不算视频
func TestExtract_YouTubeWithoutVideoID(t *testing.T) {
	raw := "Playlist here and https://youtube.com/watch?list=PL2"
	res := Extract(raw)
	if len(res.Videos) != 0 {
		t.Errorf("Extract() videos = %+v, want none", res.Videos)
	}
	if res.Cleaned != raw {
		t.Errorf("Extract() cleaned = %q, want %q", res.Cleaned, raw)
	}
}

// TestExtract_Idempotent 测试对清理结果再次提取不再改变文本
func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"Here: 🖼️ Image URL: https://x/y.png done",
		"![cat](https://x/cat.png)\nImage: https://x/cat.png",
		"Watch https://youtu.be/abc123 and 🎥 Video URL: https://cdn.example.com/v.mp4!",
		"🖼️ Image URL:\n🎥 Video URL:",
		"Image: nope, Video: later",
		`{"imageUrl": "https://x/a.jpg", "note": "ok"}`,
		"Check [this tutorial](https://www.youtube.com/watch?v=abc123) now",
	}
	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			first := Extract(raw).Cleaned
			second := Extract(first).Cleaned
			if first != second {
				t.Errorf("Extract() not idempotent: %q -> %q", first, second)
			}
		})
	}
}
