package beaddeck

import (
	"fmt"
	"strconv"
)

// CSS class names shared by the block renderer and the stylesheets.
const (
	classTitle      = "deck-title"
	classHeading    = "deck-heading"
	classSubheading = "deck-subheading"
	classEntry      = "deck-entry"
	classSpacer     = "deck-spacer"
	classPageBreak  = "deck-page-break"
	classImage      = "deck-image"
)

// buildLayoutCSS generates the structural rules every deck needs regardless
// of the stylesheet: forced page breaks, headings kept with their content,
// images never split across pages.
func buildLayoutCSS() string {
	return fmt.Sprintf(`
/* Layout: always active */
.%[1]s {
  break-after: page;
  page-break-after: always;
  height: 0;
  margin: 0;
}
h1, h2 {
  break-after: avoid;
  page-break-after: avoid;
}
img.%[2]s {
  break-inside: avoid;
  page-break-inside: avoid;
}
`, classPageBreak, classImage)
}

// inches formats a length for inline CSS.
func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "in"
}
