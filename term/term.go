// Package term renders chatblocks display units for a terminal.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	chatblocks "github.com/riverfjs/chatblocks-go"
)

var (
	emphasisStyle = lipgloss.NewStyle().
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	galleryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// Render formats units as terminal text wrapped to width columns.
// A non-positive width disables wrapping.
func Render(units []chatblocks.Unit, width int) string {
	lines := make([]string, 0, len(units))
	for _, u := range units {
		switch v := u.(type) {
		case *chatblocks.ParagraphUnit:
			lines = append(lines, wrap(inlines(v.Inlines), width))
		case *chatblocks.ListRowUnit:
			prefix := indexStyle.Render(fmt.Sprintf("%d.", v.Index)) + " "
			body := wrap(inlines(v.Inlines), width-lipgloss.Width(prefix))
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, prefix, body))
		case *chatblocks.ImageGalleryUnit:
			lines = append(lines, imageGallery(v))
		case *chatblocks.VideoGalleryUnit:
			lines = append(lines, videoGallery(v))
		}
	}
	return strings.Join(lines, "\n")
}

func inlines(runs []chatblocks.Inline) string {
	var b strings.Builder
	for _, in := range runs {
		switch in.Kind {
		case chatblocks.InlineEmphasis:
			b.WriteString(emphasisStyle.Render(in.Text))
		case chatblocks.InlineLink:
			b.WriteString(linkStyle.Render(in.Text))
			if in.Text != in.URL {
				b.WriteString(dimStyle.Render(" <" + in.URL + ">"))
			}
		default:
			b.WriteString(in.Text)
		}
	}
	return b.String()
}

func imageGallery(g *chatblocks.ImageGalleryUnit) string {
	rows := []string{galleryTitleStyle.Render(fmt.Sprintf("🖼 %d image(s)", g.Count))}
	for i, img := range g.Images {
		label := img.URL
		if img.Alt != "" {
			label = img.Alt + " " + dimStyle.Render("<"+img.URL+">")
		}
		rows = append(rows, fmt.Sprintf("  %d) %s", i+1, label))
	}
	return strings.Join(rows, "\n")
}

func videoGallery(g *chatblocks.VideoGalleryUnit) string {
	rows := []string{galleryTitleStyle.Render(fmt.Sprintf("🎥 %d video(s)", g.Count))}
	for i, v := range g.Videos {
		if v.Presentation == chatblocks.PresentEmbedded {
			rows = append(rows, fmt.Sprintf("  %d) %s %s", i+1, linkStyle.Render(v.EmbedURL), dimStyle.Render("(embedded)")))
			continue
		}
		rows = append(rows, fmt.Sprintf("  %d) %s %s", i+1, linkStyle.Render(v.OriginalURL), dimStyle.Render("(open externally)")))
	}
	return strings.Join(rows, "\n")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
