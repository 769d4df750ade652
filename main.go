// Package main is the entry point for the mdbview CLI tool.
//
// mdbview is a command-line utility for decoding GoPro mdb*.db media-index
// files, the McObject eXtremeDB format GoPro cameras use to index clips on
// an SD card.
package main

import "github.com/mdbview/mdbview/cmd"

func main() {
	cmd.Execute()
}
