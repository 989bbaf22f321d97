// Package pipeline implements the HTML stages of deck rendering.
//
//   - Markdown rendering of README bodies via Goldmark (fragments only)
//   - CSS injection into the assembled HTML document
//   - Rewriting of relative image paths to file:// URLs
//
// PDF generation is handled by the root beaddeck package using headless
// Chrome (go-rod). The pipeline never touches the browser.
package pipeline
