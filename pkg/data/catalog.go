package data

import _ "embed"

// DefaultCatalog is the verse catalog compiled into the binary.
//
//go:embed verses.json
var DefaultCatalog []byte
