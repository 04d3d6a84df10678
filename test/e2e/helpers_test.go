//go:build e2e

// Package e2e exercises the domainfetch CLI end to end: real command
// tree, real flag parsing, real output. Every flow here is hermetic.
// Lookups that would reach WHOIS servers, resolvers, or provider APIs
// are covered by the package-level tests instead.
package e2e

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manadonis/domain-fetcher/internal/cli"
)

const testVersion = "0.0.0-e2e"

// isolate gives the test a private working directory and HOME, and
// strips every environment variable the CLI reads. Tests in this
// package share the process working directory, so none run in parallel.
func isolate(t *testing.T) {
	t.Helper()

	tmp := t.TempDir()

	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(origWD) })

	origHome, hadHome := os.LookupEnv("HOME")
	os.Setenv("HOME", tmp)
	t.Cleanup(func() {
		if hadHome {
			os.Setenv("HOME", origHome)
		} else {
			os.Unsetenv("HOME")
		}
	})

	clearEnv(t, "RAPIDAPI_KEY")
	clearEnv(t, "AWS_ACCESS_KEY_ID")
	clearEnv(t, "AWS_PROFILE")
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DOMAINFETCH_") {
			clearEnv(t, strings.SplitN(kv, "=", 2)[0])
		}
	}
}

func clearEnv(t *testing.T, key string) {
	t.Helper()

	orig, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, orig)
		}
	})
}

// runCLI invokes the CLI in-process with the given arguments and
// returns everything it printed to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origArgs := os.Args
	os.Args = append([]string{"domainfetch"}, args...)
	defer func() { os.Args = origArgs }()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := cli.Execute(testVersion)

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	r.Close()

	return string(out), runErr
}
