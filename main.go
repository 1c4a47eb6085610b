package main

import "github.com/mouse-blink/antinode/cmd"

func main() {
	cmd.Execute()
}
