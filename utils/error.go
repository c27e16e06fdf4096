package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

var (
	// ErrClosed is returned when a file handle is used after Close.
	ErrClosed = errors.New("file already closed")
)

// Err reports err with the caller's location, then returns it unchanged.
func Err(err error) error {
	if err != nil {
		fmt.Printf("%s %s\n", location(2), err)
	}
	return err
}

func location(deep int) string {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		file = "???"
		line = 0
	}
	file = filepath.Base(file)
	return file + ":" + strconv.Itoa(line)
}

// Assert panics when cond does not hold.
func Assert(cond bool) {
	if !cond {
		panic("assert failed")
	}
}
