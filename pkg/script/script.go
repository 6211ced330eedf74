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

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rlite/rlite-node-config/pkg/constants"
	v1 "github.com/rlite/rlite-node-config/pkg/types/v1"
)

// OpenError is returned when the script file can't be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open script file %s: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError is returned when the script could be opened but reading it failed
// after the given line
type ReadError struct {
	LineNumber int
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed reading script after line %d: %s", e.LineNumber, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Classify trims the given raw line and tells to which pass it belongs.
// Blank and comment lines are reported as not ok and must be skipped.
func Classify(lineNumber int, raw string) (v1.ScriptLine, v1.LineKind, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, constants.CommentPrefix) {
		return v1.ScriptLine{}, v1.Regular, false
	}

	line := v1.ScriptLine{LineNumber: lineNumber, Text: text}
	if line.Args()[0] == constants.EnrollCmd {
		return line, v1.Enroll, true
	}
	return line, v1.Regular, true
}

// Parse reads the script line by line and queues every command line
func Parse(r io.Reader) (*v1.CommandQueue, error) {
	queue := v1.NewCommandQueue()
	scanner := bufio.NewScanner(r)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line, kind, ok := Classify(lineNumber, scanner.Text())
		if !ok {
			continue
		}
		queue.Push(line, kind)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{LineNumber: lineNumber, Err: err}
	}

	return queue, nil
}

// Load opens the script at path from the given filesystem and parses it
func Load(fs v1.FS, path string) (*v1.CommandQueue, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f)
}
