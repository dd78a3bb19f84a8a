package main

import "github.com/mouse-blink/rinse/cmd"

func main() {
	cmd.Execute()
}
