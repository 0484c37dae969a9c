package main

import "github.com/securepassgen/securepassgen-go/internal/cli"

func main() {
	cli.Execute()
}
