package main

import "shbox/cmd"

func main() {
	cmd.Execute()
}
