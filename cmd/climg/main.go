package main

import "github.com/blacktop/climg/cmd/climg/cmd"

func main() {
	cmd.Execute()
}
