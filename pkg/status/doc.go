/*
Package status owns file access and entry status for draftignore.

	+-----------+     ReadDir / ReadFile     +-----------+
	|  Scanner  | <------------------------- |           |
	+-----------+                            |  Manager  |
	+-----------+  ReadFile / WriteFile      |           |
	|   Sync    | <------------------------> |           |
	+-----------+                            +-----------+

🎯 Purpose:
- Reads the documents directory and the ignore file
- Replaces the ignore file in one step (temp file + rename)
- Names what happened to each managed entry (EntryStatus)
- Formats entry lines for the console

🔍 Example:

	mgr := status.New(root)
	content, err := mgr.ReadFile(ctx, ".gitignore")
	err = mgr.WriteFile(ctx, ".gitignore", updated)
	fmt.Println(status.FormatEntry("articles/a.md", status.EntryAdded))
*/
package status
