package main

import (
	"bufio"
	"os"

	bodyfile "www.velocidex.com/golang/bodyfile"
)

// eachRecord decodes fd line by line. Lines are independent so a bad
// record never aborts the scan - the callback receives the decode
// error and decides what to do with it.
func eachRecord(fd *os.File,
	callback func(line_number int, line string,
		entry *bodyfile.FileEntryDescriptor, err error)) error {

	scanner := bufio.NewScanner(fd)

	// Paths with many escaped segments can make long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for line_number := 1; scanner.Scan(); line_number++ {
		line := scanner.Text()
		entry, err := bodyfile.DecodeRecord(line)
		callback(line_number, line, entry, err)
	}
	return scanner.Err()
}
