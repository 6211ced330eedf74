/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1

import (
	"fmt"
	"strings"
)

// LineKind tells in which pass a script line is executed
type LineKind int

const (
	Regular LineKind = iota
	Enroll
)

func (k LineKind) String() string {
	switch k {
	case Enroll:
		return "enroll"
	default:
		return "regular"
	}
}

// ScriptLine is a trimmed, non empty and non comment line of an init script
type ScriptLine struct {
	LineNumber int
	Text       string
}

// Args returns the whitespace separated tokens of the line, in order
func (l ScriptLine) Args() []string {
	return strings.Fields(l.Text)
}

func (l ScriptLine) String() string {
	return fmt.Sprintf("%d: %s", l.LineNumber, l.Text)
}

// CommandQueue holds the script lines in file order, split in the two
// execution passes. It is only appended to while parsing.
type CommandQueue struct {
	Regular []ScriptLine
	Enroll  []ScriptLine
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		Regular: []ScriptLine{},
		Enroll:  []ScriptLine{},
	}
}

// Push appends the line to the queue of the given kind
func (q *CommandQueue) Push(line ScriptLine, kind LineKind) {
	switch kind {
	case Enroll:
		q.Enroll = append(q.Enroll, line)
	default:
		q.Regular = append(q.Regular, line)
	}
}

// Len returns the number of queued lines in both passes
func (q CommandQueue) Len() int {
	return len(q.Regular) + len(q.Enroll)
}

// Lines returns all queued lines in execution order
func (q CommandQueue) Lines() []ScriptLine {
	lines := make([]ScriptLine, 0, q.Len())
	lines = append(lines, q.Regular...)
	return append(lines, q.Enroll...)
}
