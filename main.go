package main

import "github.com/nhaef/narutils/cmd"

func main() {
	cmd.Execute()
}
