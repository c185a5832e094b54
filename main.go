package main

import "github.com/nathanhack/matgen/cmd"

func main() {
	cmd.Execute()
}
