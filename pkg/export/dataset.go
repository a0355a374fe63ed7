package export

// Dataset is the tabular content handed to a renderer. Rows are ordered to
// match Headers positionally.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}
