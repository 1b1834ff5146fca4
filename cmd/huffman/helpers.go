package main

import (
	"os"

	"golang.org/x/text/encoding/charmap"
)

// readTextFile loads a whole text file and decodes it to UTF-8. Legacy 8-bit
// charsets go through x/text charmaps; undecodable bytes become U+FFFD and
// are counted like any other symbol.
func readTextFile(path, charset string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %s", path, err)
	}

	switch charset {
	case "utf-8", "utf8":
		return string(data)
	case "win1251":
		out, _ := charmap.Windows1251.NewDecoder().Bytes(data)
		return string(out)
	case "latin1":
		out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
		return string(out)
	default:
		log.Fatalf("Unknown charset %q", charset)
		return ""
	}
}
