package main

import "github.com/lukasmeier/mediumpress/cmd"

func main() {
	cmd.Execute()
}
