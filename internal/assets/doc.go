// Package assets provides the stylesheets embedded in the binary.
//
// Styles live in styles/{name}.css. The deck uses "deck"; callers can
// replace it entirely by passing their own CSS to the converter.
package assets
