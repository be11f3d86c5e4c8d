package main

import "github.com/pko841923-dot/Level-System/cmd/lvl/root"

func main() {
	root.Execute()
}
