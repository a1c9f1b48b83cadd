/*
Package operation wires the document scanner to the ignore file synchronizer.

	+-------------+        +----------------+
	|   Scanner   | -----> |  Synchronizer  |
	| (documents) |  paths |  (.gitignore)  |
	+-------------+        +----------------+

🔄 Flow:
1. Scan the documents directory into unpublished and published paths
2. Hand both lists to the synchronizer, which owns the ignore file
3. Return the scan result together with the report

Check runs the same flow but stops after planning, so nothing is written.
*/
package operation
