package beaddeck

import "fmt"

// Kind identifies the variant of a Block.
type Kind int

// Block kinds. The zero Kind is invalid so an uninitialized Block is caught.
const (
	KindTitle Kind = iota + 1
	KindHeading
	KindSubheading
	KindParagraph
	KindEntry
	KindSpacer
	KindPageBreak
	KindImage
)

var kindNames = map[Kind]string{
	KindTitle:      "title",
	KindHeading:    "heading",
	KindSubheading: "subheading",
	KindParagraph:  "paragraph",
	KindEntry:      "entry",
	KindSpacer:     "spacer",
	KindPageBreak:  "page break",
	KindImage:      "image",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one renderable unit of a document. Which fields are meaningful
// depends on Kind:
//
//	Title, Heading, Subheading, Paragraph: Text
//	Entry:     Label (bold, followed by a colon) and Text (Markdown)
//	Spacer:    Height
//	PageBreak: nothing
//	Image:     Src, Width, Height, Fallback
//
// Sizes are in inches.
type Block struct {
	Kind     Kind
	Text     string
	Label    string
	Src      string
	Width    float64
	Height   float64
	Fallback string
}

// Title returns a document title block.
func Title(text string) Block {
	return Block{Kind: KindTitle, Text: text}
}

// Heading returns a section heading block.
func Heading(text string) Block {
	return Block{Kind: KindHeading, Text: text}
}

// Subheading returns a second-level heading block.
func Subheading(text string) Block {
	return Block{Kind: KindSubheading, Text: text}
}

// Paragraph returns a plain text paragraph. Text is escaped, never parsed.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Entry returns a labelled paragraph whose body is rendered as Markdown.
func Entry(label, markdown string) Block {
	return Block{Kind: KindEntry, Label: label, Text: markdown}
}

// Spacer returns vertical space of the given height.
func Spacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}

// PageBreak returns a forced page break.
func PageBreak() Block {
	return Block{Kind: KindPageBreak}
}

// Image returns an image drawn at exactly width x height. fallback is shown
// instead when the file cannot be decoded.
func Image(src string, width, height float64, fallback string) Block {
	return Block{Kind: KindImage, Src: src, Width: width, Height: height, Fallback: fallback}
}

// Validate reports whether the block can be rendered.
func (b Block) Validate() error {
	switch b.Kind {
	case KindTitle, KindHeading, KindSubheading, KindParagraph, KindPageBreak:
		return nil
	case KindEntry:
		if b.Label == "" {
			return fmt.Errorf("%w: entry without label", ErrInvalidBlock)
		}
		return nil
	case KindSpacer:
		if b.Height < 0 {
			return fmt.Errorf("%w: negative spacer height %.2f", ErrInvalidBlock, b.Height)
		}
		return nil
	case KindImage:
		if b.Src == "" {
			return fmt.Errorf("%w: image without source", ErrInvalidBlock)
		}
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: image size %.2fx%.2f must be positive", ErrInvalidBlock, b.Width, b.Height)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidBlock, b.Kind)
	}
}
