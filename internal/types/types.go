package types

import (
	"fmt"
	"unicode/utf8"
)

// MediaKind 区分图片与视频引用
type MediaKind int

const (
	MediaImage MediaKind = iota
	MediaVideo
)

// String returns the string representation of MediaKind.
func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	default:
		return "unknown"
	}
}

// MediaRef 表示从原始消息中提取出的一个媒体引用
//
// MatchStart/MatchLength 是在原始字符串中的字节偏移量。
// AltText 仅用于图片；EmbedURL 与 OriginalURL 仅用于视频。
type MediaRef struct {
	Kind        MediaKind `json:"kind"`
	MatchStart  int       `json:"match_start"`
	MatchLength int       `json:"match_length"`
	URL         string    `json:"url"`
	AltText     string    `json:"alt_text,omitempty"`
	EmbedURL    string    `json:"embed_url,omitempty"`
	OriginalURL string    `json:"original_url,omitempty"`
}

// RuneSpan 将 MatchStart/MatchLength 换算为 raw 中的字符（rune）偏移
//
// raw 必须是提取时使用的原始字符串；越界的偏移会被截到 raw 的范围内。
func (r MediaRef) RuneSpan(raw string) (start, length int) {
	s := clamp(r.MatchStart, len(raw))
	e := clamp(r.MatchStart+r.MatchLength, len(raw))
	if e < s {
		e = s
	}
	return utf8.RuneCountInString(raw[:s]), utf8.RuneCountInString(raw[s:e])
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// SpanKind 行内片段类型
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanLink
)

// String returns the string representation of SpanKind.
func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanBold:
		return "bold"
	case SpanLink:
		return "link"
	default:
		return "unknown"
	}
}

// Span 是一行内的一个片段
//
// Text 为可见内容（Link 时为显示文本），Raw 为切出该片段的源文本，
// 按顺序拼接所有 Raw 即可还原原始行。
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	URL  string   `json:"url,omitempty"`
	Raw  string   `json:"raw"`
}

// BlockType 块类型
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockListItem
	BlockImageGallery
	BlockVideoGallery
)

// String returns the string representation of BlockType.
func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockListItem:
		return "list_item"
	case BlockImageGallery:
		return "image_gallery"
	case BlockVideoGallery:
		return "video_gallery"
	default:
		return "unknown"
	}
}

// Block 是解析结果中的一个块
type Block interface {
	BlockType() BlockType
}

// Paragraph 普通文本行
type Paragraph struct {
	Spans []Span
}

// BlockType returns BlockParagraph.
func (p *Paragraph) BlockType() BlockType {
	return BlockParagraph
}

// ListItem 编号列表中的一行
//
// Ordinal 是在当前连续列表中的位置（从 1 开始），Marker 保留源文本中的编号前缀
// （如 "5. "），只用于还原源文本。
type ListItem struct {
	Ordinal int
	Marker  string
	Spans   []Span
}

// BlockType returns BlockListItem.
func (l *ListItem) BlockType() BlockType {
	return BlockListItem
}

// ImageGallery 消息末尾的图片集合
type ImageGallery struct {
	Images []MediaRef
}

// BlockType returns BlockImageGallery.
func (g *ImageGallery) BlockType() BlockType {
	return BlockImageGallery
}

// VideoGallery 消息末尾的视频集合
type VideoGallery struct {
	Videos []MediaRef
}

// BlockType returns BlockVideoGallery.
func (g *VideoGallery) BlockType() BlockType {
	return BlockVideoGallery
}

// ListPolicy 决定空行是否结束当前编号列表
type ListPolicy int

const (
	// BlankLineClosesList 空行总是结束当前列表（默认）
	BlankLineClosesList ListPolicy = iota
	// BlankLineKeepsList 空行不影响列表，只有非列表文本行才结束列表
	BlankLineKeepsList
)

// UnmarshalText 支持配置文件中的 "close" / "keep"
func (p *ListPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "close", "":
		*p = BlankLineClosesList
	case "keep":
		*p = BlankLineKeepsList
	default:
		return fmt.Errorf("unknown list policy %q", text)
	}
	return nil
}

// ImageFallback 图片加载失败时的表现
type ImageFallback int

const (
	// FallbackPlaceholder 显示占位图
	FallbackPlaceholder ImageFallback = iota
	// FallbackHide 隐藏该图片
	FallbackHide
)

// String returns the string representation of ImageFallback.
func (f ImageFallback) String() string {
	switch f {
	case FallbackPlaceholder:
		return "placeholder"
	case FallbackHide:
		return "hide"
	default:
		return "unknown"
	}
}

// UnmarshalText 支持配置文件中的 "placeholder" / "hide"
func (f *ImageFallback) UnmarshalText(text []byte) error {
	switch string(text) {
	case "placeholder", "":
		*f = FallbackPlaceholder
	case "hide":
		*f = FallbackHide
	default:
		return fmt.Errorf("unknown image fallback %q", text)
	}
	return nil
}

// RenderConfig 渲染配置
type RenderConfig struct {
	LinkTextLimit    int           `toml:"link_text_limit"`
	Ellipsis         string        `toml:"ellipsis"`
	ImageFallback    ImageFallback `toml:"image_fallback"`
	PlaceholderLabel string        `toml:"placeholder_label"`
	ListPolicy       ListPolicy    `toml:"list_policy"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LinkTextLimit:    50,
		Ellipsis:         "...",
		ImageFallback:    FallbackPlaceholder,
		PlaceholderLabel: "Image unavailable",
		ListPolicy:       BlankLineClosesList,
	}
}
