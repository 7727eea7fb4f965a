package chatblocks

import (
	"errors"
	"testing"
)

// TestDecodeReply 测试解析后端回复
func TestDecodeReply(t *testing.T) {
	body := []byte(`{"response":"**Hi**","agent_name":"news_agent","stage":"done","current_agent":"news_agent","audio_base64":"UklGRg=="}`)
	reply, err := DecodeReply(body)
	if err != nil {
		t.Fatalf("DecodeReply() error = %v", err)
	}
	want := Reply{
		Response:     "**Hi**",
		AgentName:    "news_agent",
		Stage:        "done",
		CurrentAgent: "news_agent",
		AudioBase64:  "UklGRg==",
	}
	if reply != want {
		t.Errorf("DecodeReply() = %+v, want %+v", reply, want)
	}
}

// TestDecodeReply_MissingFields 测试缺失字段为空
func TestDecodeReply_MissingFields(t *testing.T) {
	reply, err := DecodeReply([]byte(`{"transcription":"hello there"}`))
	if err != nil {
		t.Fatalf("DecodeReply() error = %v", err)
	}
	if reply.Response != "" || reply.AgentName != "" {
		t.Errorf("DecodeReply() = %+v, want empty response and agent", reply)
	}
	if reply.Transcription != "hello there" {
		t.Errorf("Transcription = %q, want %q", reply.Transcription, "hello there")
	}
}

// TestDecodeReply_Invalid 测试非法响应体
func TestDecodeReply_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>502 Bad Gateway</html>"},
		{name: "empty", body: ""},
		{name: "array", body: `[1,2,3]`},
		{name: "string", body: `"ok"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeReply([]byte(tt.body))
			if !errors.Is(err, ErrInvalidReply) {
				t.Errorf("DecodeReply() error = %v, want ErrInvalidReply", err)
			}
		})
	}
}

// TestErrorReply 测试合成错误消息
func TestErrorReply(t *testing.T) {
	reply := ErrorReply(errors.New("connection refused"), "http://127.0.0.1:8000/api")
	want := "❌ Error: connection refused. Please make sure the backend is running at http://127.0.0.1:8000/api"
	if reply.Response != want {
		t.Errorf("ErrorReply() response = %q, want %q", reply.Response, want)
	}
	if reply.AgentName != AgentError {
		t.Errorf("ErrorReply() agent = %q, want %q", reply.AgentName, AgentError)
	}

	if got := ErrorReply(nil, "").Response; got != "❌ Error: unknown error." {
		t.Errorf("ErrorReply(nil) response = %q", got)
	}
}

// TestAgentEmoji 测试 agent emoji 映射
func TestAgentEmoji(t *testing.T) {
	tests := map[string]string{
		"news_agent":    "📰",
		"grocery_agent": "🛒",
		"error":         "❌",
		"":              "🤖",
		"mystery_agent": "🤖",
	}
	for agent, want := range tests {
		if got := AgentEmoji(agent); got != want {
			t.Errorf("AgentEmoji(%q) = %q, want %q", agent, got, want)
		}
	}
	if got := AgentLabel("weather_agent"); got != "weather agent" {
		t.Errorf("AgentLabel() = %q, want %q", got, "weather agent")
	}
}
