// Package directive implements the directive pass of the assembler.
//
// Directive lines start with '.' and configure the assembler rather than
// the program:
//
//	.SET NAME VALUE
//
// VALUE is a numeric literal (10, 0AH, 7O, 101B) or a double quoted string.
// Quoted "TRUE" and "FALSE", in any case, are bools. The pass resolves
// every .SET into a Registry, forwards all other lines untouched, and
// collects every directive error with its line instead of stopping at the
// first one.
package directive
