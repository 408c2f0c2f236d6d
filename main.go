package main

import "github.com/yeremiapane/restaurant-concierge/cmd"

func main() {
	cmd.Execute()
}
