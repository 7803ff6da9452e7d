package board

import (
	"fmt"
	"os"
)

const logFile = "termtris.log"

// logf appends a line to the debug log file. The game owns the whole screen,
// so runtime logging has to stay off the terminal.
func (b *Board) logf(format string, v ...any) {
	if !b.debug {
		return
	}

	f, _ := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	defer f.Close()

	fmt.Fprintf(f, format+"\n", v...)
}
