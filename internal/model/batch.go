package model

// Batch is the nested generation shape exchanged with the watermark
// evaluation pipeline: outer index = program, inner index = candidate
// generation for that program.
type Batch [][]string

// Candidates returns the total number of candidate generations in the batch.
func (b Batch) Candidates() int {
	total := 0
	for _, gens := range b {
		total += len(gens)
	}

	return total
}
