package output

// Output formats. Text is the console listing, CSV the file listing.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Separators per format. Both end the list with a single newline.
const (
	TextSep = ' '
	CSVSep  = ','
)
