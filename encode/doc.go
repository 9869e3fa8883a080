// Package encode renders keyfmt results: block reports in text, YAML or
// JSON, block views and block diffs.
//
// # Usage
//
//	r := encode.NewReport(doc, infos, err)
//	err := encode.EncodeReports([]*encode.Report{r}, w,
//	    encode.EncodeFormat(format.YAMLFormat))
//
// Text output is colored when given [EncodeColors].
//
// # Related Packages
//
//   - github.com/signadot/keyfmt/keymap - find blocks
//   - github.com/signadot/keyfmt/libdiff - compare blocks
package encode
