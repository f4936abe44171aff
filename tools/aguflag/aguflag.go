// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package aguflag provides flag types for aguda tools.
package aguflag

import (
	"flag"
	"fmt"
	"slices"
	"strings"
)

type stringList struct {
	list *[]string
}

func (sl *stringList) String() string {
	if sl.list == nil {
		return ""
	}
	return strings.Join(*sl.list, ",")
}

func (sl *stringList) Set(values string) error {
	for _, value := range strings.Split(values, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		*sl.list = append(*sl.list, value)
	}
	return nil
}

// StringListVar defines a flag in a flag set to pass a list of strings
// separated by commas. The flag can be repeated.
func StringListVar(fs *flag.FlagSet, name string, value []string, doc string) *[]string {
	list := slices.Clone(value)
	sList := stringList{&list}
	fs.Var(&sList, name, doc)
	return sList.list
}

// StringList returns a flag to pass a list of string from the command line.
func StringList(name string, value []string, doc string) *[]string {
	return StringListVar(flag.CommandLine, name, value, doc)
}

type choice struct {
	value   *string
	choices []string
}

func (c *choice) String() string {
	if c.value == nil {
		return ""
	}
	return *c.value
}

func (c *choice) Set(value string) error {
	if !slices.Contains(c.choices, value) {
		return fmt.Errorf("invalid value %q: must be one of %s", value, strings.Join(c.choices, ", "))
	}
	*c.value = value
	return nil
}

// ChoiceVar defines a flag in a flag set accepting a value from a list.
func ChoiceVar(fs *flag.FlagSet, name, value string, choices []string, doc string) *string {
	c := &choice{value: &value, choices: choices}
	fs.Var(c, name, fmt.Sprintf("%s (one of %s)", doc, strings.Join(choices, ", ")))
	return c.value
}

// Choice returns a flag accepting a value from a list from the command line.
func Choice(name, value string, choices []string, doc string) *string {
	return ChoiceVar(flag.CommandLine, name, value, choices, doc)
}
