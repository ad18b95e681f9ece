// Package iocsv streams delimited import files into ordered row maps.
// This is an impure I/O package; it performs no persistence and applies
// no semantic validation beyond the header contract.
package iocsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// utf8BOM is stripped from the start of the stream if present.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Row is one data row keyed by header name, with its physical line
// number in the file (the header is line 1, the first data row line 2).
type Row struct {
	Line   int
	Fields map[string]string
}

// Reader lazily yields rows from one input stream. A Reader cannot be
// restarted; re-reading a file means creating a new Reader.
type Reader struct {
	csv    *csv.Reader
	header []string
	line   int
}

// New prepares a Reader over the input stream.
//
// The declared encoding ("utf-8", "latin-1", "windows-1252") and the
// field delimiter come from configuration; a leading byte-order mark is
// stripped and every header cell is trimmed. New fails with a
// MissingHeaderError when the stream has no header row, and with an
// UnknownEncodingError for an unsupported declared encoding.
func New(r io.Reader, encoding string, delimiter rune) (*Reader, error) {
	decoded, err := decode(r, encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, MissingHeaderError()
		}
		return nil, HeaderReadError(err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	// Field counts of data rows are checked against the header.
	cr.FieldsPerRecord = len(header)

	return &Reader{csv: cr, header: header, line: 1}, nil
}

// Header returns the trimmed header names in file order.
func (r *Reader) Header() []string {
	res := make([]string, len(r.header))
	copy(res, r.header)
	return res
}

// RequireColumns fails with a MissingColumnsError when any of the named
// headers is absent from the file. Column names are an explicit contract
// with upstream producers, never inferred from position.
func (r *Reader) RequireColumns(names []string) error {
	var missing []string
	for _, name := range names {
		found := false
		for _, h := range r.header {
			if h == name {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return MissingColumnsError(missing)
	}
	return nil
}

// Next returns the next data row with all values trimmed.
// It returns io.EOF at the end of the stream and a FieldCountError when
// a row's field count disagrees with the header.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	r.line++
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return Row{Line: r.line}, FieldCountError(r.line, len(r.header), err)
		}
		return Row{}, RowReadError(r.line, err)
	}

	fields := make(map[string]string, len(r.header))
	for i, name := range r.header {
		fields[name] = strings.TrimSpace(record[i])
	}
	return Row{Line: r.line, Fields: fields}, nil
}

// decode wraps r with a decoder for the declared encoding and strips a
// leading UTF-8 byte-order mark.
func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		// keep as-is
	case "latin-1", "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, UnknownEncodingError(encoding)
	}

	br := bufio.NewReader(r)
	lead, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(lead, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br, nil
}
