package chatblocks

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/riverfjs/chatblocks-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig 从 TOML 文件读取渲染配置，未出现的字段保留默认值
//
// 示例文件：
//
//	link_text_limit = 40
//	ellipsis = "…"
//	image_fallback = "hide"
//	placeholder_label = "No preview"
//	list_policy = "keep"
func LoadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析 TOML 格式的渲染配置
func ParseConfig(data []byte) (*RenderConfig, error) {
	config := types.DefaultRenderConfig()
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger.Printf("ignoring unknown config keys: %v", undecoded)
	}
	if config.LinkTextLimit < 0 {
		return nil, fmt.Errorf("link_text_limit must not be negative, got %d", config.LinkTextLimit)
	}
	return config, nil
}
