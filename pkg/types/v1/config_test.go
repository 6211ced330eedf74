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
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs"

	v1 "github.com/rlite/rlite-node-config/pkg/types/v1"
)

var _ = Describe("Types", Label("types", "config"), func() {
	Describe("Config", func() {
		var cfg *v1.Config
		BeforeEach(func() {
			cfg = &v1.Config{
				Fs:     vfs.OSFS,
				Logger: v1.NewNullLogger(),
				Runner: &v1.RealRunner{},
				Script: "/etc/rina/initscript",
				Ctl:    "rlite-ctl",
			}
		})
		It("sanitizes a complete config", func() {
			Expect(cfg.Sanitize()).To(Succeed())
		})
		It("reports all missing values at once", func() {
			cfg.Script = ""
			cfg.Ctl = ""
			cfg.Runner = nil
			err := cfg.Sanitize()
			Expect(err).To(HaveOccurred())
			merr, ok := err.(*multierror.Error)
			Expect(ok).To(BeTrue())
			Expect(merr.Errors).To(HaveLen(3))
			Expect(err.Error()).To(ContainSubstring("no script file defined"))
			Expect(err.Error()).To(ContainSubstring("no control tool defined"))
			Expect(err.Error()).To(ContainSubstring("no runner defined"))
		})
	})
	Describe("ScriptLine", func() {
		It("splits the text on any whitespace", func() {
			line := v1.ScriptLine{LineNumber: 3, Text: "ipcp-create  a.IPCP\tnormal n.DIF"}
			Expect(line.Args()).To(Equal([]string{"ipcp-create", "a.IPCP", "normal", "n.DIF"}))
			Expect(line.String()).To(Equal("3: ipcp-create  a.IPCP\tnormal n.DIF"))
		})
	})
	Describe("CommandQueue", func() {
		It("starts with both passes initialized and empty", func() {
			q := v1.NewCommandQueue()
			Expect(q.Regular).NotTo(BeNil())
			Expect(q.Enroll).NotTo(BeNil())
			Expect(q.Len()).To(Equal(0))
			Expect(q.Lines()).To(BeEmpty())
		})
		It("keeps insertion order and puts enrollments last", func() {
			q := v1.NewCommandQueue()
			a := v1.ScriptLine{LineNumber: 1, Text: "create a"}
			x := v1.ScriptLine{LineNumber: 2, Text: "ipcp-enroll x"}
			b := v1.ScriptLine{LineNumber: 3, Text: "create b"}
			q.Push(a, v1.Regular)
			q.Push(x, v1.Enroll)
			q.Push(b, v1.Regular)
			Expect(q.Regular).To(Equal([]v1.ScriptLine{a, b}))
			Expect(q.Enroll).To(Equal([]v1.ScriptLine{x}))
			Expect(q.Len()).To(Equal(3))
			Expect(q.Lines()).To(Equal([]v1.ScriptLine{a, b, x}))
		})
		It("names the line kinds", func() {
			Expect(v1.Regular.String()).To(Equal("regular"))
			Expect(v1.Enroll.String()).To(Equal("enroll"))
		})
	})
})
