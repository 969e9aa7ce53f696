package program_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfsim/lexer"
	"github.com/sarchlab/bfsim/program"
)

func plain(k program.Kind) program.Instruction {
	return program.Instruction{Kind: k}
}

var _ = Describe("Parse", func() {
	It("should keep flat programs flat", func() {
		prog, err := program.Parse(lexer.Lex("+-><"))
		Expect(err).NotTo(HaveOccurred())
		Expect(prog).To(Equal(program.Program{
			plain(program.Inc), plain(program.Dec),
			plain(program.IncPtr), plain(program.DecPtr),
		}))
	})

	It("should parse an empty program", func() {
		prog, err := program.Parse(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(prog).To(BeEmpty())
	})

	It("should collapse a bracket pair into a loop", func() {
		prog, err := program.Compile("[->+<]")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog).To(HaveLen(1))
		Expect(prog[0].Kind).To(Equal(program.Loop))
		Expect(prog[0].Body).To(Equal([]program.Instruction{
			plain(program.Dec), plain(program.IncPtr),
			plain(program.Inc), plain(program.DecPtr),
		}))
	})

	It("should nest loops", func() {
		prog, err := program.Compile("[[]]")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog).To(Equal(program.Program{
			program.NewLoop(program.NewLoop()),
		}))
	})

	It("should keep siblings around nested loops in order", func() {
		prog, err := program.Compile(".[,[-]>]<")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog).To(Equal(program.Program{
			plain(program.Write),
			program.NewLoop(
				plain(program.Read),
				program.NewLoop(plain(program.Dec)),
				plain(program.IncPtr),
			),
			plain(program.DecPtr),
		}))
	})

	It("should reject a lone loop-end at position 0", func() {
		_, err := program.Compile("]")
		Expect(err).To(MatchError("unmatched loop-end at position 0"))
		Expect(errors.Is(err, program.ErrUnmatchedLoopEnd)).To(BeTrue())
	})

	It("should report the op code index, not the character offset", func() {
		_, err := program.Compile("comment +-] more")
		var perr *program.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Pos).To(Equal(2))
	})

	It("should reject a lone loop-start at its recorded position", func() {
		_, err := program.Compile("[")
		Expect(err).To(MatchError("unmatched loop-start at position 0"))
		Expect(errors.Is(err, program.ErrUnmatchedLoopStart)).To(BeTrue())
	})

	It("should report the outermost open loop-start", func() {
		_, err := program.Compile("+[[]")
		Expect(err).To(MatchError("unmatched loop-start at position 1"))
	})

	It("should fail on a loop-end after a closed loop", func() {
		_, err := program.Compile("[]]")
		Expect(err).To(MatchError("unmatched loop-end at position 2"))
	})
})

var _ = Describe("Format", func() {
	It("should render the tree without comments", func() {
		prog, err := program.Compile("a [b - c] . , > <")
		Expect(err).NotTo(HaveOccurred())
		Expect(program.Format(prog)).To(Equal("[-].,><"))
		Expect(prog.String()).To(Equal("[-].,><"))
	})

	It("should count nested nodes", func() {
		prog, err := program.Compile("+[-[>]]")
		Expect(err).NotTo(HaveOccurred())
		Expect(program.Count(prog)).To(Equal(5))
	})
})
