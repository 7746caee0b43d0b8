package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter emits one row per sample in ascending income order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"income", "tax", "take_home", "color"}); err != nil {
		return nil, err
	}
	for _, s := range r.Result.Samples {
		row := []string{
			s.Income.StringFixed(2),
			s.Tax.StringFixed(2),
			s.TakeHome.StringFixed(2),
			string(s.Color),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
