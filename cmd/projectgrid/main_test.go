package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/projectgrid/internal/cli"
	"github.com/vk/projectgrid/internal/testutil"
)

func TestRun_ListsIggyProjects(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteTree(t, testutil.IggyTree("settings.gradle.kts", testutil.IggySettingsKTS))
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"--root", root, "list"})
	testutil.DumpLogs(t, logs)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, testutil.IggyList, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Help is printed to the output buffer and is not an error.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "run() should return an *cli.ExitError")
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The settings declare a project whose directory is absent.
	root := testutil.WriteTree(t, map[string]string{
		"settings.hcl": "include \"iggy-java-sdk\" {\n  directory = \"java-sdk\"\n}\n",
	})

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--root", root, "validate"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitConfig, exitErr.Code)
	require.Contains(t, exitErr.Message, "directory 'java-sdk' does not exist")
}
