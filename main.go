package main

import "sticker-manager/cmd"

func main() {
	cmd.Execute()
}
