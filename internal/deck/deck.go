// Package deck assembles the fixed Bead Web presentation narrative into a
// block sequence ready for rendering.
package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-beaddeck"
	"github.com/alnah/go-beaddeck/internal/beads"
)

// Title is the deck title, also used as the PDF document title.
const Title = "Bead Web Visualization Presentation"

// Defaults.
const (
	DefaultGraphDir = "output"
	DefaultDate     = "August 24, 2025"
)

// Image size in inches. Aspect ratio is not preserved.
const (
	imageWidth  = 6.0
	imageHeight = 4.0
)

// Graph is one graph page of the deck.
type Graph struct {
	Number      int
	File        string
	Title       string
	Description string
}

// NotFound is the notice shown when the graph file does not exist.
func (g Graph) NotFound() string {
	return fmt.Sprintf("Graph %d image not found", g.Number)
}

// Unreadable is the notice shown when the graph file exists but cannot be
// decoded.
func (g Graph) Unreadable() string {
	return fmt.Sprintf("Graph %d image could not be loaded", g.Number)
}

var graphs = []Graph{
	{
		Number:      1,
		File:        "graph_1_dependency_flow.png",
		Title:       "Graph 1: Simple Dependency Example",
		Description: "Perfect starting point: shows the basic concept with node_a_1 (source) flowing to node_b_1 (derived). This demonstrates the fundamental bead dependency relationship.",
	},
	{
		Number:      2,
		File:        "graph_2_convergence_with_versions.png",
		Title:       "Graph 2: Convergence with Versions",
		Description: "Shows convergence pattern where multiple sources (node_a_1 and node_a_2) feed into node_b_2. Also displays version history of node_a_1, demonstrating how bead tracks evolution over time.",
	},
	{
		Number:      3,
		File:        "graph_3_all_beads_overview.png",
		Title:       "Graph 3: Complete Bead Web",
		Description: "The full picture: all 5 beads showing the convergence pattern where node_b_2 processes both node_a_1 (latest) and node_a_2 (data_2).",
	},
	{
		Number:      4,
		File:        "graph_4_all_beads_and_versions.png",
		Title:       "Graph 4: All Beads and Versions",
		Description: "Complete colored visualization showing all beads, connections, and version history. This comprehensive view displays the entire bead ecosystem including convergence patterns and versioning.",
	},
}

// Graphs returns the four graph definitions in deck order.
func Graphs() []Graph {
	out := make([]Graph, len(graphs))
	copy(out, graphs)
	return out
}

// descriptionOrder differs from the loading order: the second node_a_1
// version is listed right after the first.
var descriptionOrder = []string{
	beads.NodeA1, beads.NodeA1V2, beads.NodeA2, beads.NodeB1, beads.NodeB2, beads.NodeC,
}

var versioning = []string{
	"node_a_1 exists in two versions with different timestamps:",
	"• Version 1 (13:17:19): Basic raw data",
	"• Version 2 (13:20:02): Updated raw data with meta changes",
	"The system automatically uses the latest version (13:20:02) in dependencies.",
}

var connections = []string{
	"• node_a_1 (raw data) → node_b_1 (simple processing example)",
	"• node_a_1 (latest) + node_a_2 (data_2) → node_b_2 (convergence processing)",
	"• node_c (independent project - no connections)",
}

var technicalDetails = []string{
	"• Used bead web command with color and heads options",
	"• Filtered graphs to focus on specific node relationships",
	"• Isolated environment by forgetting other bead boxes",
	"• Generated PNG visualizations with dependency tracking",
}

var graphSpecifications = []string{
	"• Graph 1: 29KB - Simple dependency example (node_a_1 → node_b_1)",
	"• Graph 2: <1KB - All source nodes (entry points)",
	"• Graph 3: 67KB - Complete bead web (5 beads with convergence pattern)",
	"• Graph 4: 44KB - Versioning example (multiple node_a_1 timestamps)",
}

// Option configures Assemble.
type Option func(*options)

type options struct {
	graphDir string
	date     string
	root     string
	exists   func(path string) bool
}

// WithGraphDir sets the directory holding the graph PNGs, relative to the
// root. Empty keeps the default.
func WithGraphDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.graphDir = dir
		}
	}
}

// WithDate sets the "Generated on" text of the title page. Empty keeps the
// default.
func WithDate(date string) Option {
	return func(o *options) {
		if date != "" {
			o.date = date
		}
	}
}

// WithRoot sets the directory relative graph paths are checked against.
// Image blocks keep their relative source; the renderer resolves them
// against its own base directory.
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithStat replaces the existence check used to choose between an image and
// its "not found" notice.
func WithStat(exists func(path string) bool) Option {
	return func(o *options) {
		if exists != nil {
			o.exists = exists
		}
	}
}

// pathExists reports whether anything exists at path. A directory counts:
// the renderer then fails to decode it and shows the unreadable notice.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Assemble builds the complete deck from the descriptions. It never fails;
// a missing description renders as empty text, though beads.Load always
// provides all of them.
func Assemble(d beads.Descriptions, opts ...Option) []beaddeck.Block {
	o := options{
		graphDir: DefaultGraphDir,
		date:     DefaultDate,
		exists:   pathExists,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var blocks []beaddeck.Block
	add := func(b ...beaddeck.Block) { blocks = append(blocks, b...) }

	// Title page
	add(
		beaddeck.Title(Title),
		beaddeck.Spacer(0.3),
		beaddeck.Subheading("Dependency Tracking and Graph Generation"),
		beaddeck.Spacer(0.2),
		beaddeck.Paragraph("Generated on: "+o.date),
		beaddeck.PageBreak(),
	)

	// Descriptions
	add(beaddeck.Heading("Bead Descriptions (from actual README files)"))
	for i, name := range descriptionOrder {
		if i > 0 {
			add(beaddeck.Spacer(0.1))
		}
		add(beaddeck.Entry(name, d[name]))
	}
	add(beaddeck.Spacer(0.3))

	add(beaddeck.Heading("Bead Versioning Demonstrated"))
	add(paragraphs(versioning)...)
	add(beaddeck.Spacer(0.3))

	add(beaddeck.Heading("Connection Flow"))
	add(paragraphs(connections)...)
	add(beaddeck.PageBreak())

	for _, g := range graphs {
		add(
			beaddeck.Heading(g.Title),
			beaddeck.Paragraph(g.Description),
			beaddeck.Spacer(0.2),
			o.graphBlock(g),
			beaddeck.PageBreak(),
		)
	}

	add(beaddeck.Heading("Technical Details"))
	add(paragraphs(technicalDetails)...)
	add(beaddeck.Spacer(0.2))
	add(beaddeck.Subheading("Graph Specifications:"))
	add(paragraphs(graphSpecifications)...)

	return blocks
}

// graphBlock returns the image block for g, or its notice when the file is
// absent.
func (o *options) graphBlock(g Graph) beaddeck.Block {
	src := filepath.ToSlash(filepath.Join(o.graphDir, g.File))

	check := filepath.FromSlash(src)
	if !filepath.IsAbs(check) && o.root != "" {
		check = filepath.Join(o.root, check)
	}
	if !o.exists(check) {
		return beaddeck.Paragraph(g.NotFound())
	}
	return beaddeck.Image(src, imageWidth, imageHeight, g.Unreadable())
}

func paragraphs(lines []string) []beaddeck.Block {
	out := make([]beaddeck.Block, len(lines))
	for i, l := range lines {
		out[i] = beaddeck.Paragraph(l)
	}
	return out
}

// SectionCount returns the number of page-break-delimited sections, which
// is the minimum page count of the rendered document.
func SectionCount(blocks []beaddeck.Block) int {
	if len(blocks) == 0 {
		return 0
	}
	n := 1
	for i, b := range blocks {
		if b.Kind == beaddeck.KindPageBreak && i < len(blocks)-1 {
			n++
		}
	}
	return n
}
