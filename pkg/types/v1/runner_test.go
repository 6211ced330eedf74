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

package v1_test

import (
	"bytes"
	"errors"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/rlite/rlite-node-config/pkg/types/v1"
)

var _ = Describe("Runner", Label("types", "runner"), func() {
	It("Runs a command successfully", func() {
		r := v1.RealRunner{}
		Expect(r.Run("true", "ipcp-create", "n.IPCP", "normal", "n.DIF")).To(Succeed())
	})
	It("Returns an exit error on non zero exit status", func() {
		r := v1.RealRunner{}
		err := r.Run("false")
		Expect(err).To(HaveOccurred())
		var exitErr *exec.ExitError
		Expect(errors.As(err, &exitErr)).To(BeTrue())
		Expect(exitErr.ExitCode()).To(Equal(1))
	})
	It("Returns an error if the command can't be found", func() {
		r := v1.RealRunner{}
		Expect(r.Run("/nonexistent/rlite-ctl", "reset")).NotTo(Succeed())
	})
	It("Passes arguments verbatim without any shell", func() {
		r := v1.RealRunner{}
		cmd := r.InitCmd("rlite-ctl", "ipcp-config", "x.IPCP", "'$HOME'")
		Expect(cmd.Args).To(Equal([]string{"rlite-ctl", "ipcp-config", "x.IPCP", "'$HOME'"}))
	})
	It("Logs the command at debug level", func() {
		memLog := &bytes.Buffer{}
		logger := v1.NewBufferLogger(memLog)
		logger.SetLevel(v1.DebugLevel())
		r := v1.RealRunner{}
		r.SetLogger(logger)
		Expect(r.GetLogger()).To(Equal(logger))
		Expect(r.Run("true", "reset")).To(Succeed())
		Expect(memLog.String()).To(ContainSubstring("Running cmd: 'true reset'"))
	})
})
