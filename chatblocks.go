// Package chatblocks 将助手回复的原始字符串解析为有序的类型化内容块
//
// 后端回复把普通文本、**粗体**、编号列表、链接以及带标记的图片/视频 URL
// 混在同一个字符串里。这个包把它拆分为可安全展示的块序列。
//
// 处理流程：
//   - ExtractMedia(): 提取图片/视频引用，返回清理后的文本
//   - Parse(): 逐行解析为 Paragraph / ListItem，并在末尾追加图片集与视频集
//   - Render(): 将块一一映射为展示单元
//
// 示例：
//
//	blocks := chatblocks.Parse(reply)
//	units := chatblocks.Render(blocks, nil)
//	for _, u := range units {
//	    switch v := u.(type) {
//	    case *chatblocks.ParagraphUnit:
//	        // 渲染段落
//	    case *chatblocks.ListRowUnit:
//	        // 渲染第 v.Index 行
//	    case *chatblocks.ImageGalleryUnit:
//	        // 渲染图片集
//	    case *chatblocks.VideoGalleryUnit:
//	        // 渲染视频集
//	    }
//	}
package chatblocks

import (
	"github.com/riverfjs/chatblocks-go/internal/extract"
	"github.com/riverfjs/chatblocks-go/internal/parser"
	"github.com/riverfjs/chatblocks-go/internal/types"
)

// 导出类型别名
type (
	MediaKind     = types.MediaKind
	MediaRef      = types.MediaRef
	SpanKind      = types.SpanKind
	Span          = types.Span
	BlockType     = types.BlockType
	Block         = types.Block
	Paragraph     = types.Paragraph
	ListItem      = types.ListItem
	ImageGallery  = types.ImageGallery
	VideoGallery  = types.VideoGallery
	ListPolicy    = types.ListPolicy
	ImageFallback = types.ImageFallback
)

const (
	MediaImage = types.MediaImage
	MediaVideo = types.MediaVideo

	SpanText = types.SpanText
	SpanBold = types.SpanBold
	SpanLink = types.SpanLink

	BlockParagraph    = types.BlockParagraph
	BlockListItem     = types.BlockListItem
	BlockImageGallery = types.BlockImageGallery
	BlockVideoGallery = types.BlockVideoGallery

	BlankLineClosesList = types.BlankLineClosesList
	BlankLineKeepsList  = types.BlankLineKeepsList

	FallbackPlaceholder = types.FallbackPlaceholder
	FallbackHide        = types.FallbackHide
)

// ParsedMessage 是解析管道的唯一输出：有序的块序列
type ParsedMessage []Block

// Extraction 媒体提取结果
type Extraction struct {
	Cleaned string
	Images  []MediaRef
	Videos  []MediaRef
}

// ExtractMedia 扫描原始消息中的图片/视频引用
//
// 返回删除了所有已识别媒体标记后的文本，以及按模式优先级排序、按 URL 去重的
// 图片与视频引用。无效的候选会被静默丢弃（仅记录日志）。
func ExtractMedia(raw string) Extraction {
	res := extract.Extract(raw)
	for _, d := range res.Dropped {
		Logger.Printf("dropped %s reference (%s) at %d: %q", d.Kind, d.Rule, d.Start, d.Match)
	}
	return Extraction{
		Cleaned: res.Cleaned,
		Images:  res.Images,
		Videos:  res.Videos,
	}
}

// Parse 将原始回复解析为有序的块序列
//
// 文本块按行序排列，随后依次追加 ImageGallery 与 VideoGallery（如有）。
// 对任何输入都不会失败：空字符串或纯空白返回空序列。
func Parse(raw string, opts ...Option) ParsedMessage {
	options := applyOptions(opts...)

	ex := ExtractMedia(raw)
	blocks := ParsedMessage(parser.ParseBlocks(ex.Cleaned, options.Config.ListPolicy))
	if len(ex.Images) > 0 {
		blocks = append(blocks, &ImageGallery{Images: ex.Images})
	}
	if len(ex.Videos) > 0 {
		blocks = append(blocks, &VideoGallery{Videos: ex.Videos})
	}
	return blocks
}

// BlockSource 还原文本块对应的清理后源行；媒体块返回空字符串
func BlockSource(block Block) string {
	return parser.Source(block)
}
