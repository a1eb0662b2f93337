package main

import (
	"github.com/NVIDIA/chartops/pkg/cli"
)

func main() {
	cli.Execute()
}
