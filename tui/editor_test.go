package tui

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorCommand(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	cmd := EditorCommand("/r/a.md", "")
	want := "vi"
	if runtime.GOOS == "windows" {
		want = "notepad"
	}
	assert.Equal([]string{want, "/r/a.md"}, cmd.Args)

	cmd = EditorCommand("/r/a.md", "nano")
	assert.Equal([]string{"nano", "/r/a.md"}, cmd.Args)

	t.Setenv("EDITOR", "code --wait")
	cmd = EditorCommand("/r/a.md", "nano")
	assert.Equal([]string{"code", "--wait", "/r/a.md"}, cmd.Args)

	t.Setenv("VISUAL", "hx")
	cmd = EditorCommand("/r/a.md", "nano")
	assert.Equal([]string{"hx", "/r/a.md"}, cmd.Args)
}
