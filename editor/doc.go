// Package editor implements sable's modal editing core: the selection
// (anchor/head) model over a byte-indexed buffer, the command line and its
// interpreter, the offset/screen view mapping, and the Bubble Tea model that
// dispatches input per mode and renders the result.
package editor
