package main

import "github.com/quantitativebiker/hex-fdm/cmd"

func main() {
	cmd.Execute()
}
