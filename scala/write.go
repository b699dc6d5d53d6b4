// SPDX-License-Identifier: MIT

package scala

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Encode writes s in Scala format. name is used in the header comment
// ("! name.scl"). Cents are always written with a decimal point so that every
// pitch line reads back as cents, never as a ratio.
func (s *Scale) Encode(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("! " + name + ".scl\n")
	bw.WriteString("!\n")
	bw.WriteString(s.description + "\n")
	bw.WriteString(strconv.Itoa(len(s.pitches)) + "\n")
	for i, p := range s.pitches {
		bw.WriteString(formatCents(p))
		if s.names != nil && s.names[i] != "" {
			bw.WriteString(" " + s.names[i])
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// WriteFile stores s at path, replacing the file atomically (temp file in the
// same directory, then rename). A scale without pitches is not written: the
// call is a no-op and any existing file is left in place.
func (s *Scale) WriteFile(path string) error {
	if len(s.pitches) == 0 {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".scl-*.tmp")
	if err != nil {
		return scalaErrorf(opWriteFile, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err = s.Encode(tmp, baseName(path)); err != nil {
		tmp.Close()
		return scalaErrorf(opWriteFile, err)
	}
	if err = tmp.Close(); err != nil {
		return scalaErrorf(opWriteFile, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return scalaErrorf(opWriteFile, err)
	}

	return nil
}

// formatCents renders v with the shortest exact representation and a
// guaranteed decimal point.
func formatCents(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}

	return text
}

// baseName strips directory and extension: "/tmp/pelog.scl" -> "pelog".
func baseName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
