// Package main provides the textswap command.
//
// textswap finds marked text regions in an image, reads and translates
// their text, and renders the translation back into the image.
//
// Usage:
//
//	textswap serve                 # HTTP API on :8000
//	textswap mcp                   # MCP server on stdio
//	textswap translate sign.png    # one-shot, writes images next to the input
//
// See --help for all available options.
package main

func main() {
	Execute()
}
