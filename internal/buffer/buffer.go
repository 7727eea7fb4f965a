package buffer

// TextBuffer accumulates string parts and joins them once at the end.
type TextBuffer struct {
	parts   []string
	byteLen int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer. Empty strings are ignored.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.byteLen += len(text)
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.byteLen)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}
