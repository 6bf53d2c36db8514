package utils

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// binarySniffLimit caps the number of bytes sampled when classifying file content.
const binarySniffLimit = 8000

// IsBinary reports whether data looks like binary rather than text content.
// A NUL byte or invalid UTF-8 marks the data as binary; empty input is text.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}

// IsFileBinary samples the beginning of the file at path and reports whether
// the content appears to be binary. Files that cannot be read are treated as text.
func IsFileBinary(path string) bool {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return false
	}
	defer fileHandle.Close()

	sample, readError := io.ReadAll(io.LimitReader(fileHandle, binarySniffLimit))
	if readError != nil {
		return false
	}
	return IsBinary(sample)
}
