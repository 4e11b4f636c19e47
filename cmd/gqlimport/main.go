package main

import "graphql-import/internal/cli"

func main() {
	cli.Execute()
}
