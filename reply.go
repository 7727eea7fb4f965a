package chatblocks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidReply 后端返回的不是合法 JSON
var ErrInvalidReply = errors.New("invalid reply body")

// AgentError 是合成错误消息使用的 agent 名称
const AgentError = "error"

// Reply 是后端回复信封
//
// 只有 Response 会被解析；其余字段原样透传给调用方。
type Reply struct {
	Response      string `json:"response"`
	Transcription string `json:"transcription,omitempty"`
	AgentName     string `json:"agent_name,omitempty"`
	Stage         string `json:"stage,omitempty"`
	CurrentAgent  string `json:"current_agent,omitempty"`
	AudioBase64   string `json:"audio_base64,omitempty"`
}

// DecodeReply 从响应体中读取回复字段，缺失的字段为空字符串
func DecodeReply(body []byte) (Reply, error) {
	if !gjson.ValidBytes(body) {
		return Reply{}, ErrInvalidReply
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return Reply{}, fmt.Errorf("%w: expected object, got %s", ErrInvalidReply, res.Type)
	}
	return Reply{
		Response:      res.Get("response").String(),
		Transcription: res.Get("transcription").String(),
		AgentName:     res.Get("agent_name").String(),
		Stage:         res.Get("stage").String(),
		CurrentAgent:  res.Get("current_agent").String(),
		AudioBase64:   res.Get("audio_base64").String(),
	}, nil
}

// ErrorReply 生成替代失败请求的合成错误消息
func ErrorReply(err error, backendURL string) Reply {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	text := fmt.Sprintf("❌ Error: %s.", strings.TrimSuffix(msg, "."))
	if backendURL != "" {
		text += " Please make sure the backend is running at " + backendURL
	}
	return Reply{
		Response:  text,
		AgentName: AgentError,
	}
}

var agentEmojis = map[string]string{
	"news_agent":    "📰",
	"weather_agent": "🌤️",
	"email_agent":   "📧",
	"grocery_agent": "🛒",
	"system":        "🤖",
	AgentError:      "❌",
}

// AgentEmoji 返回 agent 对应的 emoji，未知 agent 使用 🤖
func AgentEmoji(agent string) string {
	if e, ok := agentEmojis[agent]; ok {
		return e
	}
	return "🤖"
}

// AgentLabel 将 "news_agent" 形式的名称转为 "news agent"
func AgentLabel(agent string) string {
	return strings.ReplaceAll(agent, "_", " ")
}
