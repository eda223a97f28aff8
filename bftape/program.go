package bftape

import (
	"fmt"
	"os"
	"strings"
)

// Program is the immutable instruction sequence. Positions are character indices.
type Program []rune

const HelloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func ParseProgram(src string) Program {
	return Program(src)
}

// LoadProgram reads the files in order and joins all their lines without line terminators.
func LoadProgram(paths ...string) (Program, error) {
	var b strings.Builder
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load program: %w", err)
		}
		for line := range strings.Lines(string(content)) {
			b.WriteString(strings.TrimRight(line, "\r\n"))
		}
	}
	return ParseProgram(b.String()), nil
}

func (p Program) String() string {
	return string(p)
}
