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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entries
	nameWidth   = 35 // Base width for the entry path
	statusWidth = 10 // Width for status text
)

// 🎯 FormatEntry formats a managed entry for display
func FormatEntry(path string, s EntryStatus) string {
	// Determine prefix symbol
	var prefix string
	switch s {
	case EntryAdded:
		prefix = color.GreenString("✓")
	case EntryRemoved:
		prefix = color.RedString("✗")
	case EntryDropped:
		prefix = color.YellowString("⟳")
	default:
		prefix = color.HiBlackString("•")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, s)

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", entryIndent),
		prefix,
		namePart,
		statusPart,
	)
}
