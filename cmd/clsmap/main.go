package main

import "github.com/wildjak/clsmap/cmd"

func main() {
	cmd.Execute()
}
