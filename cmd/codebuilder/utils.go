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

package main

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const shortCommitLen = 7

func getVersion(version string) string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(version, info)
}

// formatVersion - renders "<version> (<commit>[-dirty], <date>)". The release version falls back to
// the module version and then to "dev".
func formatVersion(version string, info *debug.BuildInfo) string {
	var commit, commitDate string
	var dirty bool
	if info != nil {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
			case "vcs.time":
				commitDate = setting.Value
			case "vcs.modified":
				dirty = setting.Value == "true"
			}
		}
	}
	if version == "" {
		version = "dev"
	}
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	if commit == "" {
		return version
	}
	if dirty {
		commit += "-dirty"
	}
	details := []string{commit}
	if commitDate != "" {
		details = append(details, commitDate)
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(details, ", "))
}
