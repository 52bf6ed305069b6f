package errors

import "encoding/json"

// Report is the structured form of an interpreter error, emitted on
// stderr when the CLI runs with --json-errors. Field order and the
// schema tag are stable so downstream tooling can rely on them.
type Report struct {
	Schema   string `json:"schema"` // Always "rinha.error/v1"
	Code     string `json:"code"`
	Phase    string `json:"phase"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
	Start    int    `json:"start,omitempty"`
	End      int    `json:"end,omitempty"`
}

// NewReport builds a Report from any error. RuntimeErrors keep their
// code and location; anything else is reported as a host error.
func NewReport(err error) *Report {
	if re, ok := AsRuntime(err); ok {
		return &Report{
			Schema:   "rinha.error/v1",
			Code:     re.Code,
			Phase:    PhaseOf(re.Code),
			Message:  re.Message,
			Filename: re.Loc.Filename,
			Start:    re.Loc.Start,
			End:      re.Loc.End,
		}
	}
	return &Report{
		Schema:  "rinha.error/v1",
		Code:    IO001,
		Phase:   PhaseOf(IO001),
		Message: err.Error(),
	}
}

// ToJSON converts a Report to JSON
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}
