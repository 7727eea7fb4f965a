package chatblocks

import (
	"github.com/riverfjs/chatblocks-go/internal/converter"
	"github.com/riverfjs/chatblocks-go/internal/placeholder"
	"github.com/riverfjs/chatblocks-go/internal/util"
)

// Render 将块序列一一映射为展示单元，不做任何解析
//
// 参数：
//   - blocks: Parse() 的输出
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回：
//   - []Unit: 与 blocks 顺序一致、数量相同的展示单元
func Render(blocks ParsedMessage, config *RenderConfig) []Unit {
	if config == nil {
		config = DefaultConfig()
	}
	r := &renderer{config: config}

	units := make([]Unit, 0, len(blocks))
	for _, block := range blocks {
		if u := r.unit(block); u != nil {
			units = append(units, u)
		}
	}
	return units
}

type renderer struct {
	config      *RenderConfig
	placeholder *string
}

func (r *renderer) unit(block Block) Unit {
	switch b := block.(type) {
	case *Paragraph:
		return &ParagraphUnit{Text: converter.Plain(b.Spans), Inlines: r.inlines(b.Spans)}
	case *ListItem:
		return &ListRowUnit{Index: b.Ordinal, Text: converter.Plain(b.Spans), Inlines: r.inlines(b.Spans)}
	case *ImageGallery:
		images := make([]ImageUnit, 0, len(b.Images))
		for _, ref := range b.Images {
			images = append(images, r.image(ref))
		}
		return &ImageGalleryUnit{Count: len(images), Images: images}
	case *VideoGallery:
		videos := make([]VideoUnit, 0, len(b.Videos))
		for _, ref := range b.Videos {
			videos = append(videos, video(ref))
		}
		return &VideoGalleryUnit{Count: len(videos), Videos: videos}
	default:
		Logger.Printf("Render: skipping unknown block %T", block)
		return nil
	}
}

func (r *renderer) inlines(spans []Span) []Inline {
	result := make([]Inline, 0, len(spans))
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			result = append(result, Inline{Kind: InlineEmphasis, Text: sp.Text})
		case SpanLink:
			label := util.TruncateRunes(sp.Text, r.config.LinkTextLimit, r.config.Ellipsis)
			result = append(result, Inline{
				Kind:      InlineLink,
				Text:      label,
				URL:       sp.URL,
				Truncated: label != sp.Text,
			})
		default:
			result = append(result, Inline{Kind: InlinePlain, Text: sp.Text})
		}
	}
	return result
}

func (r *renderer) image(ref MediaRef) ImageUnit {
	img := ImageUnit{
		URL:      ref.URL,
		Alt:      ref.AltText,
		Fallback: r.config.ImageFallback,
	}
	if img.Fallback == FallbackPlaceholder {
		img.Placeholder = r.placeholderURI()
	}
	return img
}

// placeholderURI draws the fallback image at most once per Render call.
func (r *renderer) placeholderURI() string {
	if r.placeholder != nil {
		return *r.placeholder
	}
	uri, err := placeholder.DataURI(r.config.PlaceholderLabel)
	if err != nil {
		Logger.Printf("placeholder rendering failed: %v", err)
	}
	r.placeholder = &uri
	return uri
}

func video(ref MediaRef) VideoUnit {
	v := VideoUnit{
		EmbedURL:     ref.EmbedURL,
		OriginalURL:  ref.OriginalURL,
		Presentation: PresentExternalLink,
	}
	if util.IsEmbeddable(ref.EmbedURL) {
		v.Presentation = PresentEmbedded
	}
	if v.OriginalURL == "" {
		v.OriginalURL = ref.URL
	}
	return v
}
