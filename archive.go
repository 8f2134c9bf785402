package fxt

import (
	"fmt"
	"io"
)

// ReadArchive reads records from r until it cleanly reaches the end of
// the stream at a record boundary. A short read in the middle of a
// record is a hard failure, not a normal end of archive.
func ReadArchive(r io.Reader) ([]Record, error) {
	var records []Record
	for {
		rec, err := readRecord(r)
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}

// WriteArchive writes records to w in order. If a record fails to
// write, WriteArchive stops immediately and returns the error; any
// bytes already written to w remain in place.
func WriteArchive(w io.Writer, records []Record) error {
	for i, rec := range records {
		if err := rec.Write(w); err != nil {
			return fmt.Errorf("fxt: writing record %d (%v): %w", i, rec.RecordType(), err)
		}
	}
	return nil
}

// ValidateMagicNumber reports an error if records does not begin with
// a MagicNumberRecord. It checks archive shape only, never record
// content.
func ValidateMagicNumber(records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("fxt: archive is empty, expected a leading magic number")
	}
	if _, ok := records[0].(MagicNumberRecord); !ok {
		return fmt.Errorf("fxt: archive does not begin with a magic number, first record is %v", records[0].RecordType())
	}
	return nil
}
