/*
Package config manages configuration parsing and validation for draftignore.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Tells the scanner where documents live and which names count as documents
- Tells the synchronizer which ignore file to rewrite and where the marker is

🔄 Flow:
1. LoadOrDefault falls back to Default when the implicit config file is missing;
   a path given with --config goes through Load and must exist
2. The parser is picked by file extension
3. Empty fields receive defaults, then Validate runs
4. Resolve anchors relative paths at the --root directory

📝 Example (.draftignore.yaml):

	documents:
	  dir: articles
	  folder: articles
	  pattern: "*.md"
	ignore:
	  file: .gitignore
	  marker: "# 公開していない記事"

The same settings in HCL:

	documents {
	  dir = "articles"
	}
	ignore {
	  marker = default_marker
	}
*/
package config
