package main

import "kitinstall/cmd"

func main() {
	cmd.Execute()
}
