package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/redstone/cpu"
)

// segment is a RAM preload, either raw words or text.
type segment struct {
	Address uint16   `yaml:"address"`
	Words   []uint16 `yaml:"words,omitempty"`
	Text    string   `yaml:"text,omitempty"`
}

// image is the YAML form of a cpu.Program:
//
//	instructions: [0x10, 0x11]
//	operands: [0, 1, 2, 8, 0, 0]
//	ram:
//	  - address: 0x100
//	    text: "Hi"
//	  - address: 0x200
//	    words: [1, 2, 3]
type image struct {
	Instructions []uint16  `yaml:"instructions"`
	Operands     []uint16  `yaml:"operands"`
	Ram          []segment `yaml:"ram"`
}

// ReadImage parses a YAML raw memory image.
func ReadImage(input io.Reader) (prog *cpu.Program, err error) {
	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)

	var img image
	err = dec.Decode(&img)
	if errors.Is(err, io.EOF) {
		err = ErrImageEmpty
		return
	}
	if err != nil {
		return
	}

	if len(img.Operands) != cpu.OPERAND_COUNT*len(img.Instructions) {
		err = fmt.Errorf("%d instructions, %d operands: %w", len(img.Instructions), len(img.Operands), cpu.ErrImageStride)
		return
	}

	out := &cpu.Program{
		Instructions: img.Instructions,
		Operands:     img.Operands,
	}

	for n, seg := range img.Ram {
		words := seg.Words
		if seg.Text != "" {
			if len(seg.Words) != 0 {
				err = fmt.Errorf("ram segment %d: %w", n, ErrSegmentText)
				return
			}
			words, err = cpu.EncodeText(seg.Text)
			if err != nil {
				return
			}
		}
		out.Store(seg.Address, words...)
	}

	prog = out
	return
}

// ReadImageFile parses a YAML raw memory image file.
func ReadImageFile(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = ReadImage(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}
