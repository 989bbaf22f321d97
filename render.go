package beaddeck

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/alnah/go-beaddeck/internal/imageprobe"
	"github.com/alnah/go-beaddeck/internal/pipeline"
)

// documentTemplate wraps the rendered blocks in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>`

// imageProbe reports whether an image file can be decoded.
type imageProbe func(path string) error

// probeImage is the production imageProbe.
func probeImage(path string) error {
	_, err := imageprobe.Check(path)
	return err
}

// blockRenderer turns a block sequence into the body of the deck document.
type blockRenderer struct {
	markdown pipeline.MarkdownRenderer
	probe    imageProbe
	baseDir  string // absolute
}

// render returns the complete HTML document and the images that were
// replaced by their fallback text.
func (r *blockRenderer) render(ctx context.Context, title string, blocks []Block) (string, []Substitution, error) {
	var body strings.Builder
	var subs []Substitution

	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		switch b.Kind {
		case KindTitle:
			writeElement(&body, "h1", classTitle, b.Text)
		case KindHeading:
			writeElement(&body, "h1", classHeading, b.Text)
		case KindSubheading:
			writeElement(&body, "h2", classSubheading, b.Text)
		case KindParagraph:
			writeElement(&body, "p", "", b.Text)
		case KindEntry:
			fragment, err := r.markdown.RenderFragment(ctx, b.Text)
			if err != nil {
				return "", nil, fmt.Errorf("%w: block %d: %v", ErrHTMLRender, i, err)
			}
			// Raw HTML is omitted by the renderer; keep its text instead.
			if !pipeline.HasText(fragment) && strings.TrimSpace(b.Text) != "" {
				fragment = "<p>" + html.EscapeString(plainOrSource(b.Text)) + "</p>\n"
			}
			label := "<strong>" + html.EscapeString(b.Label) + ":</strong> "
			fmt.Fprintf(&body, "<div class=\"%s\">%s</div>\n", classEntry, pipeline.PrefixFirstParagraph(fragment, label))
		case KindSpacer:
			fmt.Fprintf(&body, "<div class=\"%s\" style=\"height: %s\"></div>\n", classSpacer, inches(b.Height))
		case KindPageBreak:
			fmt.Fprintf(&body, "<div class=\"%s\"></div>\n", classPageBreak)
		case KindImage:
			if sub := r.writeImage(&body, b); sub != nil {
				subs = append(subs, *sub)
			}
		default:
			return "", nil, fmt.Errorf("%w: block %d: unknown kind %v", ErrInvalidBlock, i, b.Kind)
		}
	}

	doc := fmt.Sprintf(documentTemplate, html.EscapeString(title), body.String())
	return doc, subs, nil
}

// plainOrSource returns the text content of src, or src itself when it
// has none.
func plainOrSource(src string) string {
	if text := pipeline.PlainText(src); text != "" {
		return text
	}
	return strings.TrimSpace(src)
}

// writeImage emits an <img> sized exactly to the block, or the block's
// fallback paragraph when the file cannot be decoded.
func (r *blockRenderer) writeImage(w *strings.Builder, b Block) *Substitution {
	path := b.Src
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, filepath.FromSlash(path))
	}

	if err := r.probe(path); err != nil {
		writeElement(w, "p", "", b.Fallback)
		return &Substitution{Src: b.Src, Fallback: b.Fallback, Err: err}
	}

	fmt.Fprintf(w, "<img class=\"%s\" src=\"%s\" alt=\"%s\" style=\"width: %s; height: %s\"/>\n",
		classImage,
		html.EscapeString(pipeline.FileURL(path)),
		html.EscapeString(filepath.Base(path)),
		inches(b.Width), inches(b.Height))
	return nil
}

// writeElement writes an escaped text element with an optional class.
func writeElement(w *strings.Builder, tag, class, text string) {
	if class != "" {
		fmt.Fprintf(w, "<%s class=\"%s\">%s</%s>\n", tag, class, html.EscapeString(text), tag)
		return
	}
	fmt.Fprintf(w, "<%s>%s</%s>\n", tag, html.EscapeString(text), tag)
}
