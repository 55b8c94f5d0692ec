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

// Decision - answer to the overwrite question.
type Decision string

const (
	DecisionReplace    Decision = "r"
	DecisionReplaceAll Decision = "R"
	DecisionSkip       Decision = "n"
	DecisionSkipAll    Decision = "N"
)

func ParseDecision(answer string) (Decision, bool) {
	switch d := Decision(answer); d {
	case DecisionReplace, DecisionReplaceAll, DecisionSkip, DecisionSkipAll:
		return d, true
	}
	return "", false
}

type Mode int

const (
	// ModeAsk - ask before overwriting an existing file.
	ModeAsk Mode = iota
	// ModeReplaceAll - overwrite existing files without asking.
	ModeReplaceAll
	// ModeSkipExisting - keep existing files, write new ones.
	ModeSkipExisting
	// ModeStopped - nothing is written anymore.
	ModeStopped
)

func (m Mode) String() string {
	switch m {
	case ModeAsk:
		return "ask"
	case ModeReplaceAll:
		return "replace-all"
	case ModeSkipExisting:
		return "skip-existing"
	case ModeStopped:
		return "stopped"
	}
	return "unknown"
}

// State - conflict resolution state of a run. The batch answers R and N change it for every
// following item.
type State struct {
	mode    Mode
	written int
	skipped int
}

func NewState(mode Mode) *State {
	return &State{mode: mode}
}

func (s *State) Mode() Mode {
	return s.mode
}

func (s *State) Stopped() bool {
	return s.mode == ModeStopped
}

func (s *State) Written() int {
	return s.written
}

func (s *State) Skipped() int {
	return s.skipped
}

func (s *State) apply(d Decision) {
	switch d {
	case DecisionReplaceAll:
		s.mode = ModeReplaceAll
	case DecisionSkipAll:
		s.mode = ModeStopped
	}
}
