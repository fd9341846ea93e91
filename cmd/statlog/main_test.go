package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type myApp struct {
	runErr     error
	usageError bool
	quitCalled bool
}

func (a *myApp) Run() error       { return a.runErr }
func (a *myApp) UsageError() bool { return a.usageError }
func (a *myApp) Quit()            { a.quitCalled = true }

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		runErr     error
		usageError bool

		wantCode int
	}{
		"Success":       {wantCode: 0},
		"Runtime error": {runErr: errors.New("boom"), wantCode: 1},
		"Usage error":   {runErr: errors.New("bad flag"), usageError: true, wantCode: 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := &myApp{runErr: tc.runErr, usageError: tc.usageError}
			require.Equal(t, tc.wantCode, run(a))
		})
	}
}
