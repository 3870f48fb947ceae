package main

import "github.com/gaurav-prasanna/pagescrape/cmd"

func main() {
	cmd.Execute()
}
