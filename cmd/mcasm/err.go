package main

import (
	"github.com/abonite/mcasm/translate"
)

var f = translate.From

// flagError locates an error in a command line flag.
type flagError struct {
	Flag string
	Err  error
}

func (err *flagError) Error() string {
	return f("%v: %v", err.Flag, err.Err)
}

func (err *flagError) Unwrap() error {
	return err.Err
}
