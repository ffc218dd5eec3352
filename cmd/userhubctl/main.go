package main

import "github.com/tmorwood/userhub/internal/cli"

func main() {
	cli.Execute()
}
