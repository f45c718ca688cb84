package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func captureErrOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := errOut
	errOut = &buf
	t.Cleanup(func() { errOut = original })
	return &buf
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:        "normal mode without error",
			userMsg:     "User friendly message",
			expectedOut: "User friendly message\n",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: errors.New("technical details"),
			verbose:      true,
			expectedOut:  "Error: technical details\n",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "User friendly message",
			technicalErr: errors.New("technical details"),
			expectedOut:  "User friendly message\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			buf := captureErrOut(t)
			PrintError(tt.userMsg, tt.technicalErr)
			assert.Equal(t, tt.expectedOut, buf.String())
		})
	}
}

func TestLogError(t *testing.T) {
	buf := captureErrOut(t)

	viper.Set("verbose", false)
	LogError("quiet", errors.New("boom"))
	assert.Empty(t, buf.String())

	viper.Set("verbose", true)
	defer viper.Set("verbose", false)
	LogError("loud", errors.New("boom"))
	LogError("no error", nil)
	assert.Equal(t, "[DEBUG] loud: boom\n[DEBUG] no error\n", buf.String())
}
