package ports

import (
	"context"
	"io"

	"lightscore/domain/assessment"
)

// ReportExporter renders a scored report into a delivery format.
type ReportExporter interface {
	// Export writes the rendered report to w.
	Export(ctx context.Context, report *assessment.AssessmentOutputV1, w io.Writer) error

	// ContentType names the MIME type of the rendered output.
	ContentType() string
}
