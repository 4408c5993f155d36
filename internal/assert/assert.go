package assert

import (
	"fmt"
	"log"
	"runtime/debug"
)

// Panics with the given msg if the given condition is false
func True(condition bool, msg string) {
	if !condition {
		logFailure(msg)
	}
}

// Panics with the given msg + error message + stack trace if the given error
// is not nil
func NoError(err error, msg string) {
	if err != nil {
		logFailure(fmt.Sprintf("%s: %v (type: %T)", msg, err, err))
	}
}

// Panics with the given msg
func Fail(msg string) {
	logFailure(msg)
}

func logFailure(msg string) {
	errMsg := fmt.Sprintf("Assertion failed: %s\n%s", msg, debug.Stack())
	log.Print(errMsg)
	panic(errMsg)
}
