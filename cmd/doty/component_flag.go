package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/dotypuzzle/doty/pkg/theory"
)

// componentList collects theory components from repeated or comma-separated
// flag occurrences.
type componentList []theory.Component

var _ pflag.Value = (*componentList)(nil)

func (l *componentList) String() string {
	tags := make([]string, 0, len(*l))
	for _, c := range *l {
		tags = append(tags, c.String())
	}
	return strings.Join(tags, ",")
}

func (l *componentList) Set(value string) error {
	for _, tag := range strings.Split(value, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		c, err := theory.ParseComponent(tag)
		if err != nil {
			return err
		}
		*l = append(*l, c)
	}
	return nil
}

func (l *componentList) Type() string {
	return "components"
}
