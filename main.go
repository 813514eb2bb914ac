package main

import "aiadvent/cmd"

func main() {
	cmd.Execute()
}
