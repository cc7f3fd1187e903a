package domain

// Route is the downstream processing path recommended for a claim.
type Route string

const (
	RouteFastTrack          Route = "Fast-track"
	RouteStandardProcessing Route = "Standard Processing"
	RouteManualReview       Route = "Manual Review"
	RouteSpecialistQueue    Route = "Specialist Queue"
	RouteInvestigationFlag  Route = "Investigation Flag"
)

// Routes lists every route a decision may carry, fastest path first.
var Routes = []Route{
	RouteFastTrack,
	RouteStandardProcessing,
	RouteManualReview,
	RouteSpecialistQueue,
	RouteInvestigationFlag,
}

// DocumentFormat is a supported input document format, keyed by file extension.
type DocumentFormat string

const (
	FormatText DocumentFormat = "txt"
	FormatPDF  DocumentFormat = "pdf"
)

// SupportedFormats maps lowercase file extensions (without dot) to DocumentFormat.
var SupportedFormats = map[string]DocumentFormat{
	"txt": FormatText,
	"pdf": FormatPDF,
}
