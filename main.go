package main

import "github.com/pine-marten/cppstat/cmd"

func main() {
	cmd.Execute()
}
