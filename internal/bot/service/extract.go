package service

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractDocumentText returns the plain-text content of an uploaded document.
// Supported extensions are .txt (read as UTF-8) and .docx (paragraph text
// joined with newlines). Unsupported extensions must be rejected by the
// caller before download; an error here covers the defensive case.
func ExtractDocumentText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document %s: %w", path, err)
		}
		return string(data), nil
	case ".docx":
		return extractDocxText(path)
	default:
		return "", fmt.Errorf("unsupported document extension: %s", filepath.Ext(path))
	}
}

// extractDocxText pulls paragraph text out of the OOXML main document part.
// A .docx file is a zip archive whose word/document.xml holds runs of text
// in <w:t> elements grouped into <w:p> paragraphs; collecting the former and
// breaking on the latter reproduces what the document shows, one line per
// paragraph.
func extractDocxText(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx %s: %w", path, err)
	}
	defer archive.Close()

	var document io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document part of %s: %w", path, err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("no document part found in %s", path)
	}
	defer document.Close()

	var sb strings.Builder
	var paragraph strings.Builder
	decoder := xml.NewDecoder(document)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document part of %s: %w", path, err)
		}

		switch elem := token.(type) {
		case xml.StartElement:
			if elem.Name.Local == "t" {
				var text string
				if err = decoder.DecodeElement(&text, &elem); err != nil {
					return "", fmt.Errorf("failed to decode text run in %s: %w", path, err)
				}
				paragraph.WriteString(text)
			}
		case xml.EndElement:
			if elem.Name.Local == "p" {
				if paragraph.Len() > 0 {
					sb.WriteString(paragraph.String())
					sb.WriteString("\n")
					paragraph.Reset()
				}
			}
		}
	}
	if paragraph.Len() > 0 {
		sb.WriteString(paragraph.String())
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
