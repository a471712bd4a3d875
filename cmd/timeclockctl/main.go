package main

import "github.com/BruksfildServices01/timeclock/cmd/timeclockctl/cmd"

func main() {
	cmd.Execute()
}
