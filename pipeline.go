package chatblocks

import (
	"context"

	"github.com/google/uuid"
)

// Message 是一条已渲染、可直接展示的助手消息
//
// CurrentAgent 用于界面标题中显示当前处理的 agent；Transcription 是语音输入的
// 识别文本，调用方用它更新对应的用户消息。
type Message struct {
	ID            string
	Blocks        ParsedMessage
	Units         []Unit
	Agent         string
	AgentEmoji    string
	CurrentAgent  string
	Stage         string
	Transcription string
	AudioBase64   string
}

// ProcessReply 完整管道：回复信封 → 块 → 展示单元
//
// 步骤：
// 1. 解析 reply.Response（提取媒体、逐行分块）
// 2. 渲染为展示单元
// 3. 附加 agent、stage、音频等旁路字段（不做任何修改）
//
// 解析本身不会失败；只有 ctx 已结束时返回错误。
func ProcessReply(ctx context.Context, reply Reply, opts ...Option) (*Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := applyOptions(opts...)

	blocks := Parse(reply.Response, WithConfig(options.Config))
	return &Message{
		ID:            uuid.NewString(),
		Blocks:        blocks,
		Units:         Render(blocks, options.Config),
		Agent:         reply.AgentName,
		AgentEmoji:    AgentEmoji(reply.AgentName),
		CurrentAgent:  reply.CurrentAgent,
		Stage:         reply.Stage,
		Transcription: reply.Transcription,
		AudioBase64:   reply.AudioBase64,
	}, nil
}
