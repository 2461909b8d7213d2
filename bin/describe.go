package main

import (
	"encoding/json"
	"fmt"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	bodyfile "www.velocidex.com/golang/bodyfile"
)

var (
	describe_command = app.Command(
		"describe", "Dump bodyfile records as JSON.")

	describe_command_file_arg = describe_command.Arg(
		"file", "The bodyfile to describe",
	).Required().OpenFile(os.O_RDONLY, os.FileMode(0666))
)

func doDescribe() {
	err := eachRecord(*describe_command_file_arg,
		func(line_number int, line string,
			entry *bodyfile.FileEntryDescriptor, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", line_number, err)
				return
			}

			serialized, err := json.MarshalIndent(entry.Describe(), " ", " ")
			kingpin.FatalIfError(err, "Marshal")

			fmt.Println(string(serialized))
		})
	kingpin.FatalIfError(err, "Reading bodyfile")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "describe":
			doDescribe()
		default:
			return false
		}
		return true
	})
}
