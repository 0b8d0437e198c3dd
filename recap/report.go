package recap

// Report gathers the diagnostics of a processed summarizer.
type Report struct {
	Summary          string   `json:"summary"`
	TopTerms         []string `json:"top_terms"`
	CompressionRatio float64  `json:"compression_ratio"`
	Language         string   `json:"language,omitempty"`
	Authors          []string `json:"authors,omitempty"`
	ReferenceSummary string   `json:"reference_summary,omitempty"`
	Table            Table    `json:"table,omitempty"`
}

// Info reports the top n terms, the compression ratio of the last summary and,
// when withTable is set, the full score table.
func (s *Summarizer) Info(n int, withTable bool) (*Report, error) {
	terms, err := s.TopTerms(n)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Summary:          s.summary,
		TopTerms:         terms,
		CompressionRatio: s.CompressionRatio(),
		Language:         s.Language(),
		Authors:          s.Authors(),
		ReferenceSummary: s.ReferenceSummary(),
	}
	if withTable {
		r.Table = s.Table()
	}
	return r, nil
}
