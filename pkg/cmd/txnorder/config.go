// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/txnsched/pkg/txn/ressched"
	"gopkg.in/yaml.v3"
)

// config is the resource list read from the config file:
//
//	resources:
//	  - name: pg-primary
//	    position: 5
//	  - name: audit-queue
//	    position: always-last
//	  - name: cache
type config struct {
	Resources []resourceConfig `yaml:"resources"`
}

type resourceConfig struct {
	Name     string   `yaml:"name"`
	Position position `yaml:"position"`
}

// position is a commit ordering position that accepts the sentinel names
// as well as integers. An omitted position is ressched.DefaultPriority.
type position ressched.Priority

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (p *position) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: position must be a scalar", value.Line)
	}
	pri, err := ressched.ParsePriority(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*p = position(pri)
	return nil
}

// resource is an enlisted participant as described by the config file.
type resource struct {
	name string
	pos  ressched.Priority
}

// CommitOrderingPosition implements the ressched.Resource interface.
func (r resource) CommitOrderingPosition() ressched.Priority { return r.pos }

func loadConfig(r io.Reader) (config, error) {
	var c config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, errors.New("config file is empty")
		}
		return config{}, errors.Wrap(err, "decoding config")
	}
	for i, rc := range c.Resources {
		if rc.Name == "" {
			return config{}, errors.Newf("resource %d has no name", i+1)
		}
	}
	return c, nil
}

func (c config) scheduler() *ressched.Scheduler[resource] {
	s := ressched.NewScheduler[resource]()
	for _, rc := range c.Resources {
		s.Add(resource{name: rc.Name, pos: ressched.Priority(rc.Position)})
	}
	return s
}
