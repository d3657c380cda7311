//go:build tinygo

package main

import (
	"lumen/app"
	"lumen/hal"
)

func main() {
	app.Run(hal.New())
}
