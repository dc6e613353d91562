package main

import "punchclock/cmd"

func main() {
	cmd.Execute()
}
