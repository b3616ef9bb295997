//go:build !test

package utils

import "github.com/sqweek/dialog"

// AskForFile prompts the user to pick a file with a native dialog.
func AskForFile(title, startingDir string, extensions ...string) (string, error) {
	builder := dialog.File().SetStartDir(startingDir).Title(title)
	if len(extensions) > 0 {
		builder = builder.Filter("Program images", extensions...)
	}

	// show the dialog
	return builder.Load()
}
