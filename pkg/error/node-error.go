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

package error

// NodeConfigError is our custom error to pass around exit codes in the error
type NodeConfigError struct {
	err  string
	code int
	wrap error
}

func (e *NodeConfigError) Error() string {
	return e.err
}

func (e *NodeConfigError) ExitCode() int {
	return e.code
}

// Unwrap gives access to the wrapped error, if any, so errors.As and errors.Is
// keep working through the exit code layer
func (e *NodeConfigError) Unwrap() error {
	return e.wrap
}

// NewFromError generates a NodeConfigError from an existing error,
// maintaining its error message
func NewFromError(err error, code int) error {
	if err == nil {
		return nil
	}

	return &NodeConfigError{err: err.Error(), code: code, wrap: err}
}

// New generates a NodeConfigError from a string
func New(err string, code int) error {
	return &NodeConfigError{err: err, code: code}
}
