/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
)

// errOut is where PrintError and LogError write.
var errOut io.Writer = os.Stderr

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(errOut, "Error: %+v\n", technicalErr)
	} else {
		fmt.Fprintln(errOut, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(errOut, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(errOut, "[DEBUG] %s\n", msg)
		}
	}
}
