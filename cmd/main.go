package main

import (
	cmd "github.com/kerbaras/gita/cmd/gita"
)

func main() {
	cmd.Execute()
}
