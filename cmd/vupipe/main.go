// Command vupipe runs the emulated graphics pipeline.
package main

import "github.com/sarchlab/vupipe/cli"

func main() {
	cli.Execute()
}
