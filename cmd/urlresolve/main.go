package main

import "github.com/rohanthewiz/urlresolve/cmd/urlresolve/commands"

func main() {
	commands.Execute()
}
