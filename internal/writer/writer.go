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
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/storages"
)

type Outcome int

const (
	OutcomeWritten Outcome = iota
	OutcomeSkipped
	OutcomeDryRun
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDryRun:
		return "dry-run"
	}
	return "unknown"
}

// Writer - stores rendered files under the storage root resolving conflicts with existing files.
type Writer struct {
	st       storages.Storager
	prompter Prompter
	out      io.Writer
	dryRun   bool
}

func NewWriter(st storages.Storager, prompter Prompter, out io.Writer, dryRun bool) *Writer {
	return &Writer{
		st:       st,
		prompter: prompter,
		out:      out,
		dryRun:   dryRun,
	}
}

// Sub - returns the writer that stores files under subPath of the current root.
func (w *Writer) Sub(subPath string) *Writer {
	return &Writer{
		st:       w.st.SubStorage(filepath.FromSlash(subPath), true),
		prompter: w.prompter,
		out:      w.out,
		dryRun:   w.dryRun,
	}
}

// Write - writes content into filePath relative to the storage root. The prompter is asked only
// when the file exists and the state mode is ModeAsk.
func (w *Writer) Write(ctx context.Context, state *State, filePath string, content []byte) (Outcome, error) {
	fullPath := filepath.Join(w.st.GetCwd(), filePath)
	logger := log.Ctx(ctx).With().Str(models.MetaKeyFilePath, fullPath).Logger()

	if state.Stopped() {
		state.skipped++
		logger.Debug().Msg("writing is stopped, file skipped")
		return OutcomeSkipped, nil
	}

	stat, err := w.st.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("check file existence: %w", err)
	}
	if stat.IsDir {
		return 0, fmt.Errorf("target \"%s\" is a directory: %w", fullPath, models.ErrFileSystem)
	}
	exists := stat.Exist

	if w.dryRun {
		action := "create"
		if exists {
			action = "replace"
			same, err := w.sameContent(ctx, filePath, content)
			if err != nil {
				return 0, err
			}
			if same {
				action = "unchanged"
			}
		}
		logger.Info().Str("Action", action).Int("Size", len(content)).Msg("dry run, file is not written")
		_, _ = fmt.Fprintf(w.out, "%s %s %s\n", color.New(color.FgBlue).Sprint("DRY-RUN"), action, fullPath)
		return OutcomeDryRun, nil
	}

	if exists {
		logger.Debug().Time("LastModified", stat.LastModified).Msg("file exists")
		switch state.Mode() {
		case ModeSkipExisting:
			state.skipped++
			logger.Info().Msg("file exists, skipped")
			return OutcomeSkipped, nil
		case ModeAsk:
			d, err := w.prompter.Ask(ctx, fullPath)
			if err != nil {
				return 0, fmt.Errorf("ask for overwrite: %w", err)
			}
			state.apply(d)
			logger.Debug().Str("Decision", string(d)).Str("Mode", state.Mode().String()).Msg("overwrite answer")
			if d == DecisionSkip || d == DecisionSkipAll {
				state.skipped++
				logger.Info().Msg("file skipped")
				return OutcomeSkipped, nil
			}
		}
	}

	if err = w.st.PutObject(ctx, filePath, bytes.NewReader(content)); err != nil {
		return 0, fmt.Errorf("write file \"%s\": %w", fullPath, err)
	}
	state.written++
	logger.Debug().Bool("Replaced", exists).Msg("file written")
	_, _ = fmt.Fprintf(w.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), fullPath)
	return OutcomeWritten, nil
}

func (w *Writer) sameContent(ctx context.Context, filePath string, content []byte) (bool, error) {
	r, err := w.st.GetObject(ctx, filePath)
	if err != nil {
		return false, fmt.Errorf("read existing file: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()
	existing, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("read existing file: %w: %w", models.ErrFileSystem, err)
	}
	return bytes.Equal(existing, content), nil
}
