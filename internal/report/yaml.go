// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/cmdhelp/internal/scan"
)

type yamlGroup struct {
	Group    string        `yaml:"group"`
	Commands []yamlCommand `yaml:"commands"`
}

type yamlCommand struct {
	Path string `yaml:"path"`
	Help string `yaml:"help"`
}

// WriteYAML writes the grouped listing to w as a YAML sequence of groups.
// An empty listing is written as an empty sequence.
func WriteYAML(w io.Writer, cmds []scan.Command) error {
	groups := Groups(cmds)
	doc := make([]yamlGroup, 0, len(groups))

	for _, g := range groups {
		yg := yamlGroup{Group: g.Name, Commands: make([]yamlCommand, 0, len(g.Commands))}
		for _, c := range g.Commands {
			yg.Commands = append(yg.Commands, yamlCommand{Path: c.Path, Help: c.Help})
		}

		doc = append(doc, yg)
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
