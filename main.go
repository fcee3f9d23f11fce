package main

import "github.com/darrylrachel/blackheart-coach-v0/cmd/coach"

func main() {
	coach.Execute()
}
