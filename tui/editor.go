package tui

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// EditorCommand builds the command that opens path. The editor is taken from
// $VISUAL, $EDITOR, then configured, falling back to vi (notepad on
// Windows). Extra words in the setting become arguments.
func EditorCommand(path, configured string) *exec.Cmd {
	words := strings.Fields(editor(configured))
	args := append(words[1:], path)
	return exec.Command(words[0], args...)
}

func editor(configured string) string {
	for _, e := range []string{os.Getenv("VISUAL"), os.Getenv("EDITOR"), configured} {
		if strings.TrimSpace(e) != "" {
			return e
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}
