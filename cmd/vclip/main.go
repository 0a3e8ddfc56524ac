package main

import "github.com/mzakyi/viral-clip-generator/internal/cli"

func main() {
	cli.Main()
}
