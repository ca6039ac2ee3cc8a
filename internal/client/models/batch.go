package models

// UploadOutcome records the result of one file within a batch.
type UploadOutcome struct {
	Key  string
	Name string
	Err  error
}

func (o UploadOutcome) Failed() bool {
	return o.Err != nil
}

// BatchReport summarizes a completed upload batch. One outcome per file, in
// upload order; a failed file never aborts the files after it.
type BatchReport struct {
	ID       string
	Outcomes []UploadOutcome
}

func (r *BatchReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Failed() {
			n++
		}
	}
	return n
}

func (r *BatchReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}
