// Package main is the entry point for quotectl, the command line and terminal
// client of the quotation service.
package main

import "github.com/jsamuelsen/cctv-quotations/cmd/quotectl/commands"

func main() {
	commands.Execute()
}
