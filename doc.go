// Package beaddeck renders slide-style PDF documents from an ordered list of
// layout blocks using headless Chrome.
//
// # Quick Start
//
// Build a block sequence, create a converter, render, and close when done:
//
//	conv, err := beaddeck.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, beaddeck.Input{
//	    Title: "Bead Web Visualization Presentation",
//	    Blocks: []beaddeck.Block{
//	        beaddeck.Title("Bead Web Visualization Presentation"),
//	        beaddeck.Spacer(0.3),
//	        beaddeck.Paragraph("Generated on: August 24, 2025"),
//	        beaddeck.PageBreak(),
//	        beaddeck.Image("output/graph_1_dependency_flow.png", 6, 4,
//	            "Graph 1 image could not be loaded"),
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("deck.pdf", result.PDF, 0o644)
//
// # Blocks
//
// A Block is one renderable unit: title, heading, subheading, paragraph,
// labelled entry (Markdown body), spacer, page break or image. Blocks are
// plain values; the sequence is the only intermediate representation between
// the caller and the PDF.
//
// Image blocks are drawn at exactly the requested size in inches, without
// preserving the aspect ratio. An image that cannot be decoded is replaced by
// its fallback text; ConvertResult.Substitutions lists every replacement.
//
// # Page Layout
//
// The default page is A4 landscape with half-inch margins. Use WithPage to
// change size, orientation or margin. PageBreak blocks always start a new page.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Set ROD_BROWSER_BIN to use a preinstalled binary and ROD_NO_SANDBOX=1 in
// containers.
package beaddeck
