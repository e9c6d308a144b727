package pipeline

import (
	"bytes"
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/qrasm/asm"
	"github.com/ezrec/qrasm/isa"
	"github.com/ezrec/qrasm/render"
	"github.com/ezrec/qrasm/source"
)

var _ = Describe("Pipeline", func() {
	var (
		mockCtrl     *gomock.Controller
		mockSource   *MockReader
		mockRenderer *MockRenderer
		pl           *Pipeline
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockSource = NewMockReader(mockCtrl)
		mockRenderer = NewMockRenderer(mockCtrl)

		pl = &Pipeline{
			Source:   mockSource,
			Renderer: mockRenderer,
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should render a packed hex payload", func() {
		mockSource.EXPECT().Text().Return("SET_COLOUR 255 0 0\nHALT\n", nil)
		mockRenderer.EXPECT().Render("8FF8008000F").Return(nil)

		payload, err := pl.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal("8FF8008000F"))
	})

	It("should render a fixed width binary payload", func() {
		pl.Assembler = &asm.Assembler{Profile: isa.PROFILE_BINARY}
		expected := "00000001" + "0000000010000000" + "00001100"

		mockSource.EXPECT().Text().Return("PUSH 128\nHALT", nil)
		mockRenderer.EXPECT().Render(expected).Return(nil)

		payload, err := pl.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal(expected))
	})

	It("should render an empty program", func() {
		mockSource.EXPECT().Text().Return("", nil)
		mockRenderer.EXPECT().Render("").Return(nil)

		payload, err := pl.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(BeEmpty())
	})

	It("should not render an unknown mnemonic", func() {
		mockSource.EXPECT().Text().Return("PUSH 1\nFOO 1 2\nHALT", nil)

		payload, err := pl.Run()

		Expect(err).To(MatchError(asm.ErrMnemonicUnknown))
		Expect(payload).To(BeEmpty())

		var stage *ErrStage
		Expect(errors.As(err, &stage)).To(BeTrue())
		Expect(stage.Stage).To(Equal(STAGE_ASSEMBLE))
	})

	It("should not render an out of range operand", func() {
		mockSource.EXPECT().Text().Return("SET_COLOUR 256 0 0", nil)

		payload, err := pl.Run()

		Expect(err).To(MatchError(asm.ErrOperandRange))
		Expect(payload).To(BeEmpty())
	})

	It("should not render a malformed operand", func() {
		pl.Assembler = &asm.Assembler{Profile: isa.PROFILE_BINARY}
		mockSource.EXPECT().Text().Return("DRAW_PIXEL x 1", nil)

		payload, err := pl.Run()

		Expect(err).To(MatchError(asm.ErrOperandMalformed))
		Expect(payload).To(BeEmpty())
	})

	It("should report source failures", func() {
		failure := errors.New("disk on fire")
		mockSource.EXPECT().Text().Return("", failure)

		payload, err := pl.Run()

		Expect(err).To(MatchError(failure))
		Expect(payload).To(BeEmpty())

		var stage *ErrStage
		Expect(errors.As(err, &stage)).To(BeTrue())
		Expect(stage.Stage).To(Equal(STAGE_READ))
	})

	It("should report renderer failures", func() {
		failure := errors.New("printer jammed")
		mockSource.EXPECT().Text().Return("HALT", nil)
		mockRenderer.EXPECT().Render("F").Return(failure)

		payload, err := pl.Run()

		Expect(err).To(MatchError(failure))
		Expect(payload).To(BeEmpty())

		var stage *ErrStage
		Expect(errors.As(err, &stage)).To(BeTrue())
		Expect(stage.Stage).To(Equal(STAGE_RENDER))
	})

	It("should require a source", func() {
		pl.Source = nil

		_, err := pl.Run()

		Expect(err).To(MatchError(ErrSourceMissing))
	})

	It("should run without a renderer", func() {
		pl.Renderer = nil
		mockSource.EXPECT().Text().Return("PUSH 1", nil)

		payload, err := pl.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal("101"))
	})

	It("should render a link from a literal source", func() {
		out := &bytes.Buffer{}
		pl.Source = source.Literal("DRAW_PIXEL 1 2\nHALT")
		pl.Renderer = &render.Link{Output: out}

		payload, err := pl.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal("901902F"))
		Expect(out.String()).To(Equal("http://localhost:5173/?code=901902F\n"))
	})
})
