// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/cmdhelp/internal/color"
	"github.com/matt-FFFFFF/cmdhelp/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []scan.Command {
	return []scan.Command{
		{Path: "cmds/zeta", Group: "b", Help: "Zeta"},
		{Path: "cmds/beta", Group: "a", Help: "Beta"},
		{Path: "cmds/Alpha", Group: "a", Help: "Alpha"},
	}
}

func TestSort(t *testing.T) {
	cmds := sample()
	Sort(cmds)

	assert.Equal(t, []scan.Command{
		{Path: "cmds/Alpha", Group: "a", Help: "Alpha"},
		{Path: "cmds/beta", Group: "a", Help: "Beta"},
		{Path: "cmds/zeta", Group: "b", Help: "Zeta"},
	}, cmds, "upper case sorts before lower case in paths")
}

func TestGroups(t *testing.T) {
	in := sample()
	groups := Groups(in)

	require.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0].Name)
	assert.Len(t, groups[0].Commands, 2)
	assert.Equal(t, "b", groups[1].Name)
	assert.Len(t, groups[1].Commands, 1)
	assert.Equal(t, sample(), in, "input must not be reordered")

	assert.Empty(t, Groups(nil))
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 0, ColumnWidth(nil))
	assert.Equal(t, len("cmds/Alpha")+2, ColumnWidth(sample()))
	assert.Equal(t, 5, ColumnWidth([]scan.Command{{Path: "ünï", Group: "x", Help: "y"}}), "width counts runes")
}

func TestWriteText_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample(), Options{}))

	want := "# A\n" +
		"cmds/Alpha  Alpha\n" +
		"cmds/beta   Beta\n" +
		"\n" +
		"# B\n" +
		"cmds/zeta   Zeta\n" +
		"\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestWriteText_Colour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample()[:1], Options{Color: true}))

	want := "\033[94m# B\033[0m\n" +
		"\033[96mcmds/zeta  \033[0mZeta\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil, Options{Color: true}))
	assert.Empty(t, buf.String())
}

func TestWriteText_PathColumnAlignment(t *testing.T) {
	cmds := []scan.Command{
		{Path: "c/a", Group: "g", Help: "short"},
		{Path: "c/much/longer/path", Group: "g", Help: "long"},
	}
	width := ColumnWidth(cmds)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, cmds, Options{}))

	for _, line := range strings.Split(buf.String(), "\n") {
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}

		assert.GreaterOrEqual(t, len(line), width)
		assert.NotEqual(t, byte(' '), line[width], "description starts right after the padding")
		assert.Equal(t, byte(' '), line[width-1])
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Utility", capitalize("utility"))
	assert.Equal(t, "Élan", capitalize("élan"))
	assert.Equal(t, "1st", capitalize("1st"))
	assert.Equal(t, "", capitalize(""))
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, color.Enabled(), DefaultOptions().Color)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_Errors(t *testing.T) {
	assert.ErrorIs(t, WriteText(failingWriter{}, sample(), Options{}), ErrWrite)
	assert.ErrorIs(t, WriteYAML(failingWriter{}, sample()), ErrWrite)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sample()))
	assert.NotContains(t, buf.String(), "\033[")

	var got []yamlGroup
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, []yamlGroup{
		{Group: "a", Commands: []yamlCommand{
			{Path: "cmds/Alpha", Help: "Alpha"},
			{Path: "cmds/beta", Help: "Beta"},
		}},
		{Group: "b", Commands: []yamlCommand{
			{Path: "cmds/zeta", Help: "Zeta"},
		}},
	}, got)
}

func TestWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
