package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("run", func() {
	var (
		dir            string
		stdout, stderr *bytes.Buffer
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
	})

	writeSource := func(src string) string {
		path := filepath.Join(dir, "prog.b")
		Expect(os.WriteFile(path, []byte(src), 0o644)).To(Succeed())
		return path
	}

	It("should run a program with the tree walker", func() {
		path := writeSource("read one byte , add one + and print it .")
		code := run([]string{path}, strings.NewReader("a"), stdout, stderr)
		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(Equal("b"))
		Expect(stderr.Len()).To(BeZero())
	})

	It("should run a program on the tick engine", func() {
		path := writeSource("++++++++[>++++++++<-]>+.")
		code := run([]string{"--engine=tick", path}, strings.NewReader(""), stdout, stderr)
		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(Equal("A"))
	})

	It("should fail on a missing file", func() {
		code := run([]string{filepath.Join(dir, "nope.b")}, nil, stdout, stderr)
		Expect(code).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("bfsim:"))
	})

	It("should require exactly one file", func() {
		Expect(run(nil, nil, stdout, stderr)).To(Equal(2))
		Expect(run([]string{"a", "b"}, nil, stdout, stderr)).To(Equal(2))
	})

	It("should reject bad flag values", func() {
		path := writeSource("+")
		Expect(run([]string{"--engine=jit", path}, nil, stdout, stderr)).To(Equal(2))
		Expect(run([]string{"--tape=0", path}, nil, stdout, stderr)).To(Equal(2))
		Expect(run([]string{"--monitor", path}, nil, stdout, stderr)).To(Equal(2))
	})

	It("should reject a tape too large to allocate", func() {
		path := writeSource("+")
		code := run([]string{"--tape=9223372036854775807", path}, nil, stdout, stderr)
		Expect(code).To(Equal(2))
		Expect(stderr.String()).To(ContainSubstring("tape size must be between 1 and"))
	})

	It("should print help and succeed", func() {
		code := run([]string{"--help"}, nil, stdout, stderr)
		Expect(code).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("Usage: bfsim"))
		Expect(stdout.String()).To(ContainSubstring("--engine"))
		Expect(stderr.Len()).To(BeZero())
	})

	It("should accept the short help flag", func() {
		Expect(run([]string{"-h"}, nil, stdout, stderr)).To(Equal(0))
		Expect(stderr.String()).NotTo(ContainSubstring("bfsim:"))
	})

	It("should abort before running a program with unbalanced brackets", func() {
		path := writeSource("+.]")
		code := run([]string{path}, nil, stdout, stderr)
		Expect(code).To(Equal(1))
		Expect(stdout.Len()).To(BeZero())
		Expect(stderr.String()).To(ContainSubstring("unmatched loop-end at position 2"))
	})

	It("should print the lint report", func() {
		path := writeSource("[[+")
		code := run([]string{"--lint", path}, nil, stdout, stderr)
		Expect(code).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("unmatched loop-start"))
	})

	It("should report a tape fault", func() {
		path := writeSource("<+")
		code := run([]string{"--tape=1", path}, nil, stdout, stderr)
		Expect(code).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("out of tape bounds"))
	})

	It("should dump the tape", func() {
		path := writeSource("+++")
		code := run([]string{"--dump", "--tape=16", path}, nil, stdout, stderr)
		Expect(code).To(Equal(0))
		Expect(stderr.String()).To(ContainSubstring("ptr 8, size 16"))
	})

	It("should write an instruction trace", func() {
		path := writeSource("+>")
		tracePath := filepath.Join(dir, "trace.json")
		code := run([]string{"--trace", tracePath, path}, nil, stdout, stderr)
		Expect(code).To(Equal(0))

		data, err := os.ReadFile(tracePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"Kind":"inc"`))
		Expect(string(data)).To(ContainSubstring(`"Kind":"incptr"`))
	})
})

var _ = Describe("closeTrace", func() {
	It("should flush and close a trace file", func() {
		f, err := os.Create(filepath.Join(GinkgoT().TempDir(), "trace.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(closeTrace(f)).To(Succeed())
	})

	It("should report a file that cannot be closed", func() {
		f, err := os.Create(filepath.Join(GinkgoT().TempDir(), "trace.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Close()).To(Succeed())
		Expect(closeTrace(f)).To(MatchError(os.ErrClosed))
	})
})
