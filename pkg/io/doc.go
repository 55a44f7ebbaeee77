// Package io reads and writes weight matrices and their derivations.
//
// # Input Formats
//
// [ReadMatrix] accepts three encodings and picks one from the first
// non-blank character:
//
//	{"weights": [[0, 2], [2, 0]]}    JSON document (as written by WriteJSON)
//	[[0, 2], [2, 0]]                 bare JSON array of rows
//	0 2                              plain text, one row per line,
//	2 0                              cells separated by spaces or commas
//
// JSON input is taken verbatim, so a ragged JSON matrix reaches the
// derivation core and is rejected there with matrix.ErrInvalidShape. Plain
// text is treated like cells typed into a table and goes through
// matrix.ParseCells: non-numeric cells become 0, the diagonal is zeroed
// and short rows are padded. Lines starting with '#' are comments.
//
// # Output Formats
//
//   - [WriteJSON]: the weights plus any derived matrices, indented
//   - [WriteText]: one space-separated row per line, readable by ReadMatrix
package io
