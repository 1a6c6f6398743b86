package assert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualToJSONFixture marshals result as indented JSON and compares it with
// fixtures/<TestName>_<fixtureName>.json. With GEN_FIXTURE=true the fixture is
// rewritten instead.
func (a *Assert) EqualToJSONFixture(fixtureName string, result any) {
	data, err := json.MarshalIndent(result, "", "  ")
	a.NoError(err, "Failed to marshal result to JSON")
	a.equalToFile(fmt.Sprintf("%s_%s.json", a.T.Name(), fixtureName), string(data))
}

// EqualToGolden compares text with fixtures/<TestName>_<goldenName>.golden,
// following the same GEN_FIXTURE convention.
func (a *Assert) EqualToGolden(goldenName string, text string) {
	a.equalToFile(fmt.Sprintf("%s_%s.golden", a.T.Name(), goldenName), text)
}

func (a *Assert) equalToFile(name string, actual string) {
	fixturePath := filepath.Join("fixtures", strings.ReplaceAll(name, "/", "_"))

	if os.Getenv("GEN_FIXTURE") == "true" {
		a.NoError(os.MkdirAll(filepath.Dir(fixturePath), 0755), "Failed to create fixture directory")
		a.NoError(os.WriteFile(fixturePath, []byte(actual+"\n"), 0644), "Failed to write fixture file")
		return
	}

	expected, err := os.ReadFile(fixturePath)
	if !a.NoError(err, "Failed to read fixture file") {
		return
	}
	// trailing newlines are not significant
	a.Equal(strings.TrimRight(string(expected), "\n"), strings.TrimRight(actual, "\n"), "Result does not match %s", fixturePath)
}
