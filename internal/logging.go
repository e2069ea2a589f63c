package internal

import (
	"io"
	"log"
)

// InitLogging routes the standard logger to w. Oneshot runs pass stderr so
// that stdout carries only answers.
func InitLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("transport-catalogue ")
}
