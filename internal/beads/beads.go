// Package beads loads the README description of each bead shown in the deck.
//
// Descriptions are read from temp/<name>/output/README.md. Loading never
// fails: any problem with a README (missing, unreadable, not UTF-8, empty)
// silently yields the bead's fixed fallback text.
package beads

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Bead identifiers in loading order.
const (
	NodeA1   = "node_a_1"
	NodeA2   = "node_a_2"
	NodeB1   = "node_b_1"
	NodeB2   = "node_b_2"
	NodeC    = "node_c"
	NodeA1V2 = "node_a_1_v2"
)

// names is the fixed bead list. Order matters for verbose reporting only.
var names = []string{NodeA1, NodeA2, NodeB1, NodeB2, NodeC, NodeA1V2}

// fallbacks are used verbatim whenever a README cannot be used.
var fallbacks = map[string]string{
	NodeA1:   "Starting node called node_a_1. No inputs in input folder. The raw data is in output folder.",
	NodeA2:   "Starting node called node_a_2. No inputs in input folder. The raw data call it data_2 is in the output folder.",
	NodeB1:   "My new output is ready with my code in code.py using node_a_1 latest version.",
	NodeB2:   "My new output is ready with my code in code.py using node_a_1 latest and node_a_2.",
	NodeC:    "A different project. Not connected with node_a_1, node_a_2, node_b_1 or node_b_2.",
	NodeA1V2: "Starting node called node_a_1. No inputs in input folder. The raw data is in output folder is updated. The bead meta is changed.",
}

// Fence markers stripped from README content. The language-tagged marker
// goes first so no stray "markdown" word is left behind.
const (
	markdownFence = "```markdown"
	fence         = "```"
)

// Source tells where a description came from.
type Source int

const (
	FromFallback Source = iota
	FromReadme
)

func (s Source) String() string {
	if s == FromReadme {
		return "readme"
	}
	return "fallback"
}

// Descriptions maps every bead name to its description text.
type Descriptions map[string]string

// Sources records, per bead, whether its description came from a README.
type Sources map[string]Source

// Names returns the fixed bead identifiers.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Fallback returns the fixed description for name.
func Fallback(name string) string {
	if s, ok := fallbacks[name]; ok {
		return s
	}
	return "Description for " + name + " not available."
}

// ReadmePath returns the slash-separated README path for a bead, relative
// to the directory that contains temp/.
func ReadmePath(name string) string {
	return path.Join("temp", name, "output", "README.md")
}

// Load reads all bead descriptions from fsys.
func Load(fsys fs.FS) Descriptions {
	d, _ := LoadWithSources(fsys)
	return d
}

// LoadDir reads all bead descriptions below root ("" means the working
// directory).
func LoadDir(root string) Descriptions {
	return Load(dirFS(root))
}

// LoadWithSources is Load plus the per-bead origin of each description.
func LoadWithSources(fsys fs.FS) (Descriptions, Sources) {
	d := make(Descriptions, len(names))
	src := make(Sources, len(names))
	for _, name := range names {
		if text, ok := readDescription(fsys, name); ok {
			d[name] = text
			src[name] = FromReadme
			continue
		}
		d[name] = Fallback(name)
		src[name] = FromFallback
	}
	return d, src
}

// LoadDirWithSources is LoadDir plus the per-bead origin.
func LoadDirWithSources(root string) (Descriptions, Sources) {
	return LoadWithSources(dirFS(root))
}

func dirFS(root string) fs.FS {
	if root == "" {
		root = "."
	}
	return os.DirFS(root)
}

// readDescription returns the cleaned README text and true, or false if
// the README cannot be used for any reason.
func readDescription(fsys fs.FS, name string) (string, bool) {
	data, err := fs.ReadFile(fsys, ReadmePath(name))
	if err != nil || !utf8.Valid(data) {
		return "", false
	}
	text := Clean(string(data))
	if text == "" {
		return "", false
	}
	return text, true
}

// Clean trims the README text, removes code fence markers and normalizes
// it to NFC.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, markdownFence, "")
	s = strings.ReplaceAll(s, fence, "")
	return norm.NFC.String(strings.TrimSpace(s))
}
