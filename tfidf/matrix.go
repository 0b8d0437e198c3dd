package tfidf

import "sort"

// Matrix is a dense document-term matrix. Rows follow document order, columns
// follow Vocabulary order.
type Matrix struct {
	vocabulary []string
	values     [][]float64
}

func (m *Matrix) Rows() int {
	return len(m.values)
}

func (m *Matrix) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

func (m *Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.values[i]...)
}

// RowMean averages row i over every vocabulary column, zeros included.
func (m *Matrix) RowMean(i int) float64 {
	if len(m.vocabulary) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.values[i] {
		sum += v
	}
	return sum / float64(len(m.vocabulary))
}

func (m *Matrix) ColumnSums() []float64 {
	sums := make([]float64, len(m.vocabulary))
	for _, row := range m.values {
		for j, v := range row {
			sums[j] += v
		}
	}
	return sums
}

// ArgsortDesc returns the column indices ordered by descending weight. Equal
// weights keep column order.
func ArgsortDesc(weights []float64) []int {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] > weights[idx[b]]
	})
	return idx
}
