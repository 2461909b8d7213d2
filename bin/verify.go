package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	bodyfile "www.velocidex.com/golang/bodyfile"
)

var (
	verify_command = app.Command(
		"verify", "Check every record in a bodyfile.")

	verify_command_file_arg = verify_command.Arg(
		"file", "The bodyfile to verify",
	).Required().OpenFile(os.O_RDONLY, os.FileMode(0666))
)

func doVerify() {
	total := 0
	bad := 0

	err := eachRecord(*verify_command_file_arg,
		func(line_number int, line string,
			entry *bodyfile.FileEntryDescriptor, err error) {
			total++
			if err != nil {
				bad++
				color.Red("line %d: %v", line_number, err)
				fmt.Println(line)
			}
		})
	kingpin.FatalIfError(err, "Reading bodyfile")

	fmt.Printf("%d records checked, %d invalid\n", total, bad)
	if bad > 0 {
		os.Exit(1)
	}
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "verify":
			doVerify()
		default:
			return false
		}
		return true
	})
}
