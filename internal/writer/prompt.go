// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package writer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var ErrNoAnswer = errors.New("no answer received")

type Prompter interface {
	// Ask - asks what to do with the existing file.
	Ask(ctx context.Context, filePath string) (Decision, error)
}

// TerminalPrompter - asks the question on out and reads the answer line from in. Unknown answers
// are asked again.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *TerminalPrompter) Ask(ctx context.Context, filePath string) (Decision, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		_, _ = fmt.Fprintf(
			p.out, "%s %s\nReplace? [r]eplace, [R]eplace all, [n]o, [N]o to all: ",
			color.New(color.FgYellow).Sprint("File exists:"), filePath,
		)
		response, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(response)
		if d, ok := ParseDecision(answer); ok {
			return d, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("file \"%s\": %w", filePath, ErrNoAnswer)
			}
			return "", fmt.Errorf("read answer: %w", err)
		}
		_, _ = fmt.Fprintf(p.out, "%s \"%s\"\n", color.New(color.FgRed).Sprint("Unknown answer"), answer)
	}
}
