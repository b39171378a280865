package cparse

import "github.com/alecthomas/participle/v2/lexer"

// exprLexer tokenizes the small C-family expression language, following
// the rule-table style of kanso's grammar/lexer.go: line comments first,
// then identifiers and numbers, then multi-character operators before their
// single-character prefixes, then punctuation and whitespace, with
// whitespace and comments elided by the parser.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Operator", Pattern: `(\|\||&&|==|!=|<=|>=|[-+*/%<>])`},
	{Name: "Punctuation", Pattern: `[(){};,?:=!]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
