// Package section defines the PLY header: its data model, its parser, and the text
// generated for writing.
//
// # Header Structure
//
// A PLY header is a sequence of keyword lines terminated by `end_header`:
//
//	ply
//	format binary_little_endian 1.0
//	comment made by a scanner          ← document comment
//	obj_info scanner 3.2               ← document obj_info
//	element vertex 8
//	property float x
//	property float y
//	property float z
//	element face 6
//	comment quads only                 ← element comment
//	property list uchar int vertex_indices
//	end_header
//
// # Parser States
//
// The parser is a state machine over the set of keywords legal on the next non-blank line:
//
//	State      | Legal keywords                           | Transition
//	-----------|------------------------------------------|---------------------------
//	Start      | format, comment, obj_info                | format → Preamble
//	Preamble   | element, comment, obj_info, end_header   | element → InElement
//	InElement  | element, comment, property, end_header   | end_header → Done
//	Done       | (none)                                   |
//
// The legality check and the transition are pure functions of (state, keyword).
//
// # Properties
//
// Property is a closed tagged union: KindScalar carries a value type, KindList carries
// a length type and a value type. Codecs switch on Kind.
//
// # Errors
//
// Every parse failure is an *errs.HeaderError carrying the 1-based line number,
// counting the leading `ply` line as line 1.
package section
