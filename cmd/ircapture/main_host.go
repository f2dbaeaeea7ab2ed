//go:build !tinygo

package main

import "github.com/sparques/ircapture/cmd/ircapture/cmd"

func main() {
	cmd.Execute()
}
