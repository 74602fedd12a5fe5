package main

import "github.com/levarentz132/storing/cmd"

func main() {
	cmd.Execute()
}
