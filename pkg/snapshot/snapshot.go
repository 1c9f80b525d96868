package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"showdown-server/internal/util"
)

// UpdateEnv is the environment variable that rewrites every snapshot instead of comparing
const UpdateEnv = "SHOWDOWN_UPDATE_SNAPSHOTS"

// Filename returns the golden file for the named snapshot
func Filename(name string) string {
	return filepath.Join("testdata", name+".golden.json")
}

// ValidateSnapshot compares obj, encoded as indented JSON, against testdata/{name}.golden.json
// A missing snapshot is written and the comparison is skipped.
func ValidateSnapshot(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot %s: %v", name, err)
	}

	filename := Filename(name)
	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv(UpdateEnv, "") != "" {
		write(t, filename, objJSON)
		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func write(t *testing.T, filename string, objJSON []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(objJSON, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}
