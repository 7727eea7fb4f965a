package parser

import (
	"regexp"
	"strings"

	"github.com/riverfjs/chatblocks-go/internal/converter"
	"github.com/riverfjs/chatblocks-go/internal/types"
)

// listLineRe 匹配 "<数字>. <内容>"，分组：1=编号前缀（含缩进与空白），2=内容
var listLineRe = regexp.MustCompile(`^([ \t]*\d+\.[ \t]+)(.*)$`)

// runState 是一次扫描内唯一的状态：当前是否处于一个连续的编号列表中
type runState int

const (
	outsideList runState = iota
	insideList
)

// scan 在逐行遍历中传递的状态
type scan struct {
	state   runState
	ordinal int
	blocks  []types.Block
}

// ParseBlocks 逐行解析清理后的文本，生成有序的块序列
//
// 空行被跳过；policy 决定空行是否结束当前列表。非列表文本行总是结束列表，
// 下一个列表行重新从 1 编号。
func ParseBlocks(cleaned string, policy types.ListPolicy) []types.Block {
	sc := scan{state: outsideList, blocks: make([]types.Block, 0)}
	if strings.TrimSpace(cleaned) == "" {
		return sc.blocks
	}
	for _, line := range strings.Split(cleaned, "\n") {
		sc = sc.next(strings.TrimSuffix(line, "\r"), policy)
	}
	return sc.blocks
}

func (sc scan) next(line string, policy types.ListPolicy) scan {
	if strings.TrimSpace(line) == "" {
		if policy == types.BlankLineClosesList {
			sc.state = outsideList
		}
		return sc
	}

	if m := listLineRe.FindStringSubmatch(line); m != nil {
		if sc.state == outsideList {
			sc.state = insideList
			sc.ordinal = 0
		}
		sc.ordinal++
		sc.blocks = append(sc.blocks, &types.ListItem{
			Ordinal: sc.ordinal,
			Marker:  m[1],
			Spans:   converter.Line(m[2]),
		})
		return sc
	}

	sc.state = outsideList
	sc.blocks = append(sc.blocks, &types.Paragraph{Spans: converter.Line(line)})
	return sc
}

// Source 还原块对应的源文本行（列表项包含原始编号前缀）
func Source(block types.Block) string {
	switch b := block.(type) {
	case *types.Paragraph:
		return converter.Source(b.Spans)
	case *types.ListItem:
		return b.Marker + converter.Source(b.Spans)
	default:
		return ""
	}
}
