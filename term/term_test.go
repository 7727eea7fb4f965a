package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	chatblocks "github.com/riverfjs/chatblocks-go"
)

func render(t *testing.T, raw string, width int) string {
	t.Helper()
	return Render(chatblocks.Render(chatblocks.Parse(raw), nil), width)
}

func TestRender_Text(t *testing.T) {
	out := render(t, "Buy **Milk**\n5. Bread\n6. [Eggs](https://eggs.example.com)", 0)

	require.Contains(t, out, "Buy ")
	require.Contains(t, out, "Milk")
	require.Contains(t, out, "1. ")
	require.Contains(t, out, "2. ")
	require.NotContains(t, out, "5.")
	require.Contains(t, out, "Eggs")
	require.Contains(t, out, "<https://eggs.example.com>")
	require.Equal(t, 3, strings.Count(out, "\n")+1)
}

func TestRender_Galleries(t *testing.T) {
	out := render(t, "![cat](https://x/cat.png)\nhttps://youtu.be/abc123\nVideo: https://cdn.example.com/v.mp4", 0)

	require.Contains(t, out, "1 image(s)")
	require.Contains(t, out, "cat")
	require.Contains(t, out, "2 video(s)")
	require.Contains(t, out, "https://www.youtube.com/embed/abc123")
	require.Contains(t, out, "(embedded)")
	require.Contains(t, out, "https://cdn.example.com/v.mp4")
	require.Contains(t, out, "(open externally)")
}

func TestRender_Wrap(t *testing.T) {
	out := render(t, strings.Repeat("word ", 30), 20)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(strings.TrimRight(line, " ")), 20, line)
	}
}

func TestRender_Empty(t *testing.T) {
	require.Equal(t, "", Render(nil, 80))
}
