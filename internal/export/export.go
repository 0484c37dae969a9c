package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Format selects the output encoding for exported passwords.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Record is one exported password with its strength metadata.
type Record struct {
	Password  string    `json:"password"`
	Length    int       `json:"length"`
	Entropy   float64   `json:"entropy_bits"`
	Score     int       `json:"score"`
	Strength  string    `json:"strength"`
	Timestamp time.Time `json:"timestamp"`
}

// Write encodes the records in the given format. Records with a zero
// timestamp are stamped with the current time.
func Write(w io.Writer, format Format, records []Record, annotated bool) error {
	records = stamped(records)
	switch format {
	case FormatText:
		return writeText(w, records, annotated)
	case FormatCSV:
		return writeCSV(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func stamped(records []Record) []Record {
	now := time.Now().UTC()
	out := make([]Record, len(records))
	for i, rec := range records {
		if rec.Timestamp.IsZero() {
			rec.Timestamp = now
		}
		out[i] = rec
	}
	return out
}

// writeText emits one password per line. Annotated output appends the
// strength summary after each password.
func writeText(w io.Writer, records []Record, annotated bool) error {
	for _, rec := range records {
		var err error
		if annotated {
			_, err = fmt.Fprintf(w, "%s  [%d chars, %.1f bits, %s %d/100]\n",
				rec.Password, rec.Length, rec.Entropy, rec.Strength, rec.Score)
		} else {
			_, err = fmt.Fprintln(w, rec.Password)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	header := []string{"Index", "Timestamp", "Password", "Length", "Entropy", "Strength", "StrengthScore"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, rec := range records {
		row := []string{
			strconv.Itoa(i + 1),
			rec.Timestamp.Format(time.RFC3339),
			rec.Password,
			strconv.Itoa(rec.Length),
			strconv.FormatFloat(rec.Entropy, 'f', 2, 64),
			rec.Strength,
			strconv.Itoa(rec.Score),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
