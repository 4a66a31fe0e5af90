package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Command tree tests ----------

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand()
	assert.NotNil(t, root.Flags().Lookup("output"))
	for _, name := range []string{"catalog", "debug", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestRootCommandShorthands(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "o", root.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "d", root.PersistentFlags().Lookup("debug").Shorthand)
	assert.Equal(t, "v", root.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCommandDefaults(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "nsxfint.csv", root.Flags().Lookup("output").DefValue)
}

func TestRootCommandHasCatalogSubcommand(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "catalog")
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	assert.Equal(t, "explicit", resolveString(nil, "explicit", "test_key", "test-flag"))
	assert.Equal(t, "", resolveString(nil, "", "test_key", "test-flag"))
}

func TestResolveBool(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, 0, exitCodeForError(nil))
	assert.Equal(t, 1, exitCodeForError(assert.AnError))
	assert.Equal(t, 1, exitCodeForError(errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("input file vmh.tsv does not exist")))
	assert.Equal(t, 1, exitCodeForError(errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("feature X has unrecognized edition")))
}

func TestErrorMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("input file report.txt is not CSV or TSV")
	assert.Equal(t, "input file report.txt is not CSV or TSV", errorMessage(err))
	assert.Equal(t, assert.AnError.Error(), errorMessage(assert.AnError))
}
