package config

// DefaultFileName is the project configuration file discovered upward
// from the working directory.
const DefaultFileName = ".markpad.yml"

// Template is the commented starter configuration written by
// `markpad init`. Values shown match the defaults.
const Template = `# markpad configuration
# See https://github.com/markpadhq/markpad for documentation.

render:
  # Syntax-highlight fenced code blocks in rendered HTML.
  highlight: false

  # Chroma style used when highlighting is enabled.
  highlight_style: github

  # Guess the language of untagged code fences from their content.
  detect_language: false

search:
  # Treat queries as regular expressions instead of literal text.
  regex: false

  # Match case exactly. When false, matching is case-insensitive.
  case_sensitive: false

  # Extra regex flags applied to every pattern (i, m, s, U).
  flags: ""

  # Continue from the opposite end when navigation passes the last match.
  wrap_around: true

  # Number of recent queries and replacements kept in the history file.
  history_limit: 50

# Glob patterns excluded from batch rendering.
ignore:
  - "node_modules/**"
  - ".git/**"

# Write a .markpad.bak copy before modifying files in place.
backups: false
`
