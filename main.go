package main

import "war/cli"

func main() {
	cli.Execute()
}
