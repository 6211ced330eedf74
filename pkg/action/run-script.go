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

package action

import (
	"errors"
	"fmt"

	nodeError "github.com/rlite/rlite-node-config/pkg/error"
	"github.com/rlite/rlite-node-config/pkg/script"
	v1 "github.com/rlite/rlite-node-config/pkg/types/v1"
)

// CommandError is returned when the control tool fails for a script line
type CommandError struct {
	Line v1.ScriptLine
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failure at line %d --> %s", e.Line.LineNumber, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type RunScriptAction struct {
	cfg   *v1.Config
	queue *v1.CommandQueue
}

func NewRunScriptAction(cfg *v1.Config, queue *v1.CommandQueue) *RunScriptAction {
	return &RunScriptAction{cfg: cfg, queue: queue}
}

// Run executes all regular lines and then all enrollments, stopping at the
// first failure
func (r RunScriptAction) Run() error {
	r.cfg.Logger.Debugf("Running %d commands and %d enrollments", len(r.queue.Regular), len(r.queue.Enroll))

	if err := r.runPass(v1.Regular, r.queue.Regular); err != nil {
		return err
	}
	return r.runPass(v1.Enroll, r.queue.Enroll)
}

func (r RunScriptAction) runPass(kind v1.LineKind, lines []v1.ScriptLine) error {
	for _, line := range lines {
		r.cfg.Logger.Debugf("Running %s line %s", kind, line)
		err := r.cfg.Runner.Run(r.cfg.Ctl, line.Args()...)
		if err != nil {
			r.cfg.Logger.Errorf("Failure at line %d --> %s", line.LineNumber, err)
			return &CommandError{Line: line, Err: err}
		}
	}
	return nil
}

// RunScript loads the configured script and runs it
func RunScript(cfg *v1.Config) error {
	queue, err := script.Load(cfg.Fs, cfg.Script)
	if err != nil {
		var openErr *script.OpenError
		if errors.As(err, &openErr) {
			cfg.Logger.Errorf("Failed to open script file %s: %s", openErr.Path, openErr.Err)
			return nodeError.NewFromError(err, nodeError.OpenFile)
		}
		cfg.Logger.Errorf("Failed reading script file %s: %s", cfg.Script, err)
		return nodeError.NewFromError(err, nodeError.ReadScript)
	}

	err = NewRunScriptAction(cfg, queue).Run()
	return nodeError.NewFromError(err, nodeError.CommandRun)
}
