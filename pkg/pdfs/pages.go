package pdfs

import "bytes"

var pdfHeader = []byte("%PDF")

// IsPDF reports whether the bytes start with the PDF signature.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfHeader)
}

// CountPages counts page objects in an encoded PDF by scanning for
// "/Type /Page" dictionary entries. It reads the document the way a viewer
// reports its page count, without parsing the full object graph.
func CountPages(data []byte) int {
	count := 0
	for i := 0; ; {
		idx := bytes.Index(data[i:], []byte("/Type"))
		if idx < 0 {
			break
		}
		i += idx + len("/Type")
		j := i
		for j < len(data) && (data[j] == ' ' || data[j] == '\n' || data[j] == '\r' || data[j] == '\t') {
			j++
		}
		if !bytes.HasPrefix(data[j:], []byte("/Page")) {
			continue
		}
		rest := data[j+len("/Page"):]
		// "/Pages" is the page tree root, not a page.
		if len(rest) > 0 && (rest[0] == 's' || isNameChar(rest[0])) {
			continue
		}
		count++
	}
	return count
}

func isNameChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	return false
}
