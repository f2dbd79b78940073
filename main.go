package main

import "video-splitter/cmd"

func main() {
	cmd.Execute()
}
