package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	bodyfile "www.velocidex.com/golang/bodyfile"
)

var (
	ls_command = app.Command(
		"ls", "List the entries in a bodyfile.")

	ls_command_file_arg = ls_command.Arg(
		"file", "The bodyfile to list",
	).Required().OpenFile(os.O_RDONLY, os.FileMode(0666))
)

func doLS() {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Name",
		"Inode",
		"Mode",
		"Size",
		"Mtime",
	})
	defer table.Render()

	err := eachRecord(*ls_command_file_arg,
		func(line_number int, line string,
			entry *bodyfile.FileEntryDescriptor, err error) {
			if err != nil {
				return
			}

			mtime := ""
			if entry.Mtime != nil {
				mtime = entry.Mtime.Time().UTC().
					Format("2006-01-02 15:04:05")
			}

			table.Append([]string{
				entry.Path.String(),
				entry.Inode.String(),
				entry.Mode.String(),
				fmt.Sprintf("%d", entry.Size),
				mtime,
			})
		})
	kingpin.FatalIfError(err, "Reading bodyfile")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "ls":
			doLS()
		default:
			return false
		}
		return true
	})
}
