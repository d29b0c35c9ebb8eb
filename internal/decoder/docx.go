package decoder

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	apperrors "finlens/internal/errors"
)

// decodeWordDocument extracts paragraph lines from a .docx container: the
// zip member word/document.xml holds the body, each w:p element is one
// paragraph, and its text runs (w:t) concatenate to the paragraph text.
// Table cells become tab-separated segments of their row's paragraph flow,
// which the line-oriented strategies handle the same way as space-aligned
// text exports.
func decodeWordDocument(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperrors.NewDecodeError("docx", err)
	}

	var docXML []byte
	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, apperrors.NewDecodeError("docx", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, apperrors.NewDecodeError("docx", err)
		}
		break
	}
	if docXML == nil {
		return nil, apperrors.NewDecodeError("docx", fmt.Errorf("word/document.xml not found in archive"))
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return nil, apperrors.NewDecodeError("docx", err)
	}

	body := findFirst(&doc.Element, "//w:body", "//body")
	if body == nil {
		return nil, apperrors.NewDecodeError("docx", fmt.Errorf("document has no body element"))
	}

	var lines []string
	appendLine := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			lines = append(lines, s)
		}
	}

	for _, el := range body.ChildElements() {
		switch el.Tag {
		case "p":
			appendLine(paragraphText(el))
		case "tbl":
			// One line per table row, cells joined with tabs so the
			// label/value shape survives.
			for _, tr := range findEach(el, ".//w:tr", ".//tr") {
				var cells []string
				for _, tc := range findEach(tr, "./w:tc", "./tc") {
					var parts []string
					for _, p := range findEach(tc, ".//w:p", ".//p") {
						if t := paragraphText(p); t != "" {
							parts = append(parts, t)
						}
					}
					cells = append(cells, strings.Join(parts, " "))
				}
				appendLine(strings.TrimSpace(strings.Join(cells, "\t")))
			}
		}
	}
	return lines, nil
}

// paragraphText concatenates the text runs of one w:p element.
func paragraphText(p *etree.Element) string {
	var b strings.Builder
	for _, t := range findEach(p, ".//w:t", ".//t") {
		b.WriteString(t.Text())
	}
	return strings.TrimSpace(b.String())
}

// findFirst returns the first element any of the paths selects. Word
// namespace prefixes vary between producers, so both prefixed and bare
// paths are tried.
func findFirst(e *etree.Element, paths ...string) *etree.Element {
	for _, path := range paths {
		if el := e.FindElement(path); el != nil {
			return el
		}
	}
	return nil
}

// findEach returns the selection of the first path that matches anything.
func findEach(e *etree.Element, paths ...string) []*etree.Element {
	for _, path := range paths {
		if els := e.FindElements(path); len(els) > 0 {
			return els
		}
	}
	return nil
}
