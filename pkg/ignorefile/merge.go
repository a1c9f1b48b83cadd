// Copyright 2025 walteh LLC
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

package ignorefile

import (
	"strings"
)

// 🔧 Options describe which lines are managed and where they go
type Options struct {
	Folder string // Lines starting with Folder + "/" are managed
	Marker string // Managed lines are placed right after this line
}

func (o Options) prefix() string {
	return o.Folder + "/"
}

// 📋 Report lists what a merge did to the managed entries
type Report struct {
	Changed bool
	Added   []string // Unpublished paths that were not present before
	Kept    []string // Unpublished paths that were already present
	Removed []string // Published paths whose entry was present before
	Dropped []string // Entries removed without a published document behind them
}

// 📄 Plan is the outcome of a merge before anything is written
type Plan struct {
	Original string
	Content  string
	Report   Report
}

// 🔄 Merge rebuilds original so that its managed lines are exactly the
// unique unpublished paths. Every managed line is stripped, unmanaged lines
// keep their content and order, and the unpublished paths are inserted right
// after the marker line, or appended when the marker is missing.
func Merge(original string, opts Options, unpublished, published []string) Plan {
	prefix := opts.prefix()
	lines := strings.Split(original, "\n")

	unmanaged := make([]string, 0, len(lines))
	existing := make(map[string]bool)
	var existingOrder []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, prefix) {
			unmanaged = append(unmanaged, line)
			continue
		}
		if !existing[trimmed] {
			existing[trimmed] = true
			existingOrder = append(existingOrder, trimmed)
		}
	}

	unique := dedupe(unpublished)

	markerIdx := -1
	for i, line := range unmanaged {
		if strings.TrimSpace(line) == opts.Marker {
			markerIdx = i
			break
		}
	}

	rebuilt := make([]string, 0, len(unmanaged)+len(unique))
	if markerIdx >= 0 {
		rebuilt = append(rebuilt, unmanaged[:markerIdx+1]...)
		rebuilt = append(rebuilt, unique...)
		rebuilt = append(rebuilt, unmanaged[markerIdx+1:]...)
	} else {
		rebuilt = append(rebuilt, unmanaged...)
		rebuilt = append(rebuilt, unique...)
	}

	var report Report
	inserted := make(map[string]bool, len(unique))
	for _, path := range unique {
		inserted[path] = true
		if existing[path] {
			report.Kept = append(report.Kept, path)
		} else {
			report.Added = append(report.Added, path)
		}
	}

	removed := make(map[string]bool)
	for _, path := range published {
		if existing[path] && !removed[path] {
			removed[path] = true
			report.Removed = append(report.Removed, path)
		}
	}

	for _, path := range existingOrder {
		if !inserted[path] && !removed[path] {
			report.Dropped = append(report.Dropped, path)
		}
	}

	content := strings.Join(rebuilt, "\n")
	report.Changed = content != original

	return Plan{
		Original: original,
		Content:  content,
		Report:   report,
	}
}

// dedupe keeps the first occurrence of every path
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, path)
	}
	return out
}
