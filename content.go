package chatblocks

// UnitType represents the type of a display unit.
type UnitType int

const (
	// UnitTypeParagraph represents a line of prose.
	UnitTypeParagraph UnitType = iota
	// UnitTypeListRow represents one indexed row of a numbered list.
	UnitTypeListRow
	// UnitTypeImageGallery represents the trailing image gallery.
	UnitTypeImageGallery
	// UnitTypeVideoGallery represents the trailing video gallery.
	UnitTypeVideoGallery
)

// String returns the string representation of UnitType.
func (ut UnitType) String() string {
	switch ut {
	case UnitTypeParagraph:
		return "paragraph"
	case UnitTypeListRow:
		return "list_row"
	case UnitTypeImageGallery:
		return "image_gallery"
	case UnitTypeVideoGallery:
		return "video_gallery"
	default:
		return "unknown"
	}
}

// Unit represents a piece of content ready to be displayed.
type Unit interface {
	GetUnitType() UnitType
}

// InlineKind represents the kind of an inline run.
type InlineKind int

const (
	InlinePlain InlineKind = iota
	InlineEmphasis
	InlineLink
)

// String returns the string representation of InlineKind.
func (k InlineKind) String() string {
	switch k {
	case InlinePlain:
		return "plain"
	case InlineEmphasis:
		return "emphasis"
	case InlineLink:
		return "link"
	default:
		return "unknown"
	}
}

// Inline is one styled run inside a paragraph or list row.
//
// For links Text is the (possibly truncated) label and URL is the untouched
// navigation target.
type Inline struct {
	Kind      InlineKind
	Text      string
	URL       string
	Truncated bool
}

// ParagraphUnit represents a line of prose. Text is the whole visible line
// with link labels untruncated, for copying and screen readers.
type ParagraphUnit struct {
	Text    string
	Inlines []Inline
}

// GetUnitType returns UnitTypeParagraph.
func (p *ParagraphUnit) GetUnitType() UnitType {
	return UnitTypeParagraph
}

// ListRowUnit represents a numbered list row. Index restarts at 1 for every
// contiguous run of list items.
type ListRowUnit struct {
	Index   int
	Text    string
	Inlines []Inline
}

// GetUnitType returns UnitTypeListRow.
func (l *ListRowUnit) GetUnitType() UnitType {
	return UnitTypeListRow
}

// ImageUnit is one gallery image.
type ImageUnit struct {
	URL      string
	Alt      string
	Fallback ImageFallback
	// Placeholder is a data URI shown instead of the image when it fails to
	// load. Empty when Fallback is FallbackHide.
	Placeholder string
}

// ImageGalleryUnit represents the trailing image gallery.
type ImageGalleryUnit struct {
	Count  int
	Images []ImageUnit
}

// GetUnitType returns UnitTypeImageGallery.
func (g *ImageGalleryUnit) GetUnitType() UnitType {
	return UnitTypeImageGallery
}

// VideoPresentation says how a video is shown.
type VideoPresentation int

const (
	// PresentEmbedded plays the video inline.
	PresentEmbedded VideoPresentation = iota
	// PresentExternalLink shows a click-to-open affordance.
	PresentExternalLink
)

// String returns the string representation of VideoPresentation.
func (p VideoPresentation) String() string {
	switch p {
	case PresentEmbedded:
		return "embedded"
	case PresentExternalLink:
		return "external_link"
	default:
		return "unknown"
	}
}

// VideoUnit is one gallery video.
type VideoUnit struct {
	EmbedURL     string
	OriginalURL  string
	Presentation VideoPresentation
}

// VideoGalleryUnit represents the trailing video gallery.
type VideoGalleryUnit struct {
	Count  int
	Videos []VideoUnit
}

// GetUnitType returns UnitTypeVideoGallery.
func (g *VideoGalleryUnit) GetUnitType() UnitType {
	return UnitTypeVideoGallery
}
