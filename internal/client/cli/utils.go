package cli

import (
	"io"
	"os"
)

// outW is where prompts and command output go. Tests redirect it.
var outW io.Writer = os.Stdout
