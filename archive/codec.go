// SPDX-License-Identifier: MIT
// Package: phom/archive
//
// codec.go — versioned JSON payloads.
//
// JSON has no literal for ±Inf or NaN, and infinite deaths are routine in
// barcodes, so non-finite numbers travel as the strings "+Inf", "-Inf" and
// "NaN".

package archive

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/phom/barcode"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*n = number(math.NaN())
		case "+Inf", "Inf":
			*n = number(math.Inf(1))
		case "-Inf":
			*n = number(math.Inf(-1))
		default:
			return fmt.Errorf("archive: bad number %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

type wireRecord struct {
	RunID         string            `json:"run_id"`
	Step          int               `json:"step"`
	Sublevel      bool              `json:"sublevel"`
	Dims          [][][2]number     `json:"dims"`
	Metrics       map[string]number `json:"metrics,omitempty"`
	SchemaVersion int               `json:"schema_version"`
	CodecVersion  int               `json:"codec_version"`
}

// EncodeRecord serializes rec.
func EncodeRecord(rec Record) ([]byte, error) {
	w := wireRecord{
		RunID:         rec.RunID,
		Step:          rec.Step,
		Sublevel:      rec.Barcode.Sublevel,
		Dims:          make([][][2]number, len(rec.Barcode.Dims)),
		SchemaVersion: rec.SchemaVersion,
		CodecVersion:  rec.CodecVersion,
	}
	for d, bars := range rec.Barcode.Dims {
		w.Dims[d] = make([][2]number, len(bars))
		for i, b := range bars {
			w.Dims[d][i] = [2]number{number(b.Birth), number(b.Death)}
		}
	}
	if len(rec.Metrics) > 0 {
		w.Metrics = make(map[string]number, len(rec.Metrics))
		for k, v := range rec.Metrics {
			w.Metrics[k] = number(v)
		}
	}
	return json.Marshal(w)
}

// DecodeRecord parses a payload written by EncodeRecord and rejects other
// schema or codec versions with ErrVersionMismatch.
func DecodeRecord(data []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, err
	}
	if w.SchemaVersion != CurrentSchemaVersion || w.CodecVersion != CurrentCodecVersion {
		return Record{}, ErrVersionMismatch
	}

	rec := Record{
		RunID:         w.RunID,
		Step:          w.Step,
		Barcode:       barcode.Barcode{Sublevel: w.Sublevel, Dims: make([][]barcode.Bar, len(w.Dims))},
		SchemaVersion: w.SchemaVersion,
		CodecVersion:  w.CodecVersion,
	}
	for d, bars := range w.Dims {
		rec.Barcode.Dims[d] = make([]barcode.Bar, len(bars))
		for i, b := range bars {
			rec.Barcode.Dims[d][i] = barcode.Bar{Birth: float64(b[0]), Death: float64(b[1])}
		}
	}
	if len(w.Metrics) > 0 {
		rec.Metrics = make(map[string]float64, len(w.Metrics))
		for k, v := range w.Metrics {
			rec.Metrics[k] = float64(v)
		}
	}
	return rec, nil
}
