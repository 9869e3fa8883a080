// Package format names the output formats of keyfmt reports.
//
// # Usage
//
//	f, err := format.ParseFormat("y")
//	if f.IsYAML() { ... }
//
// # Related Packages
//
//   - github.com/signadot/keyfmt/encode - encode reports in a Format
package format
