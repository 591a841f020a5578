package main

import (
	"github.com/millbrook-logistics/dispatchd/cmd/app"
)

func main() {
	app.Run()
}
