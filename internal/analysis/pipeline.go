package analysis

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"feedlens/domain/feedback"
	"feedlens/internal"
	"feedlens/internal/errors"
)

// Report strings surfaced instead of errors. The pipeline never fails
// its caller; every failure mode becomes one of these.
const (
	reportNoData   = "Error: No valid data found in the file."
	reportNoColumn = "Error: Could not identify feedback column in data."
	// ReportUnknownKind is used by callers that take the analysis kind
	// as an untrusted string and fail to parse it.
	ReportUnknownKind = "Error: Unknown analysis type."
)

// Loader turns a file path into a feedback table.
type Loader interface {
	ReadData() (*feedback.Table, error)
}

// LoaderFunc builds a Loader for one path.
type LoaderFunc func(path string) Loader

// Outcome is the result of one pipeline invocation: the formatted
// report plus the numeric aggregates the chart renderer consumes. Only
// the aggregate for the requested kind is set; Report is always set.
type Outcome struct {
	Kind      feedback.Kind
	Report    string
	Sentiment *SentimentResult
	Keywords  *KeywordResult
	Topics    *TopicResult
	Summary   *SummaryResult
}

// Failed reports whether the invocation produced an error report
// instead of analysis results.
func (o *Outcome) Failed() bool {
	return o.Sentiment == nil && o.Keywords == nil && o.Topics == nil && o.Summary == nil
}

// Pipeline runs the load → infer → analyze → format flow. It holds no
// state between invocations; concurrent Run calls are independent.
type Pipeline struct {
	newLoader LoaderFunc
	logger    *internal.Logger
}

// NewPipeline creates a pipeline using the given loader constructor.
func NewPipeline(newLoader LoaderFunc) *Pipeline {
	return &Pipeline{
		newLoader: newLoader,
		logger:    internal.NewDefaultLogger(),
	}
}

// Run performs one full analysis. It never panics out: unexpected
// failures are recovered into an "Analysis error:" report.
func (p *Pipeline) Run(path string, kind feedback.Kind) (out *Outcome) {
	start := time.Now()
	out = &Outcome{Kind: kind}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Pipeline] recovered from analysis panic: %v", r)
			out.Report = fmt.Sprintf("Analysis error: %v", r)
			out.Sentiment, out.Keywords, out.Topics, out.Summary = nil, nil, nil, nil
		}
		p.logger.Info("%s analysis of %s completed in %.2fms", kind, path, float64(time.Since(start).Microseconds())/1000)
	}()

	table, err := p.newLoader(path).ReadData()
	if err != nil {
		out.Report = p.loadFailureReport(path, err)
		return out
	}
	if table.Empty() {
		out.Report = reportNoData
		return out
	}

	column, ok := InferFeedbackColumn(table)
	if !ok {
		p.logger.Debug("no feedback column among %v", table.Columns)
		out.Report = reportNoColumn
		return out
	}
	p.logger.Debug("using feedback column %q over %d rows", column, table.Len())

	switch kind {
	case feedback.KindSentiment:
		r := AnalyzeSentiment(table, column)
		out.Sentiment = &r
		out.Report = r.Report()
	case feedback.KindKeywords:
		r := AnalyzeKeywords(table, column)
		out.Keywords = &r
		out.Report = r.Report()
	case feedback.KindTopics:
		r := AnalyzeTopics(table, column)
		out.Topics = &r
		out.Report = r.Report()
	case feedback.KindSummary:
		r := AnalyzeSummary(table, column)
		out.Summary = &r
		out.Report = r.Report()
	default:
		// Unreachable for kinds built through feedback.ParseKind.
		out.Report = ReportUnknownKind
	}
	return out
}

func (p *Pipeline) loadFailureReport(path string, err error) string {
	switch errors.GetCode(err) {
	case errors.CodeUnsupportedFormat:
		return fmt.Sprintf("Error: Unsupported file format: %s", filepath.Ext(path))
	default:
		p.logger.Error("loading data from %s: %v", path, err)
		return reportNoData
	}
}
