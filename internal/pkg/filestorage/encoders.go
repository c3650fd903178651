package filestorage

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
)

// XMLIndent is the indentation used for exported XML documents
const XMLIndent = "  "

// XMLDocument writes v as an indented XML document with a declaration
func XMLDocument(v interface{}) WriteFunc {
	return func(w io.Writer) error {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", XMLIndent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode xml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// CSVTable writes a header row followed by rows
func CSVTable(header []string, rows [][]string) WriteFunc {
	return func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write csv rows: %w", err)
		}
		return nil
	}
}
