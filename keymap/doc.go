// Package keymap locates bindings blocks in ZMK keymap files.
//
// A keymap is read into a [Document], an immutable sequence of lines. Lines
// that open a block are recognized by [IsBindingsOpen]; [ScanEnd] finds the
// line that closes a block, and [Walk] and [Blocks] drive a single forward
// pass over a whole Document.
//
// A block that is never closed is reported with an [*UnterminatedError]
// rather than a made up boundary.
package keymap
