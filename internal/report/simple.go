package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/walletscan/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the classified counterparty node list.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ExposureReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeBreakdown(&sb, report)
	w.writeRisks(&sb, report)
	w.writeClustering(&sb, report)
	w.writeRecentActivity(&sb, report)
	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ExposureReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        WALLETSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Address:        %s\n", report.Address))
	sb.WriteString(fmt.Sprintf("Network:        %s\n", report.Network))
	sb.WriteString(fmt.Sprintf("Scan Date:      %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Exposure Score: %d/100 (%s)\n", report.ExposureScore, report.RiskLevel))
	sb.WriteString("\n")
}

// writeBreakdown writes the score breakdown and financial metrics.
func (w *SimpleWriter) writeBreakdown(sb *strings.Builder, report *model.ExposureReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORE BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	b := report.ScoreBreakdown
	sb.WriteString(fmt.Sprintf("  KYC LINKS:  %3d\n", b.KYCLinks))
	sb.WriteString(fmt.Sprintf("  CLUSTERING: %3d\n", b.Clustering))
	sb.WriteString(fmt.Sprintf("  ACTIVITY:   %3d\n", b.Activity))
	sb.WriteString(fmt.Sprintf("  FINANCIAL:  %3d\n", b.Financial))
	sb.WriteString(fmt.Sprintf("  IDENTITY:   %3d\n", b.Identity))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  Net Worth (est.):  $%.2f\n", report.NetWorthUSD))
	if report.RealizedLossesUSD > 0 {
		sb.WriteString(fmt.Sprintf("  Realized Losses:   $%.2f\n", report.RealizedLossesUSD))
	}
	sb.WriteString(fmt.Sprintf("  Trades:            %d (est. %d memecoin)\n", report.TradeCount, report.MemecoinTrades))
	sb.WriteString("\n")
}

// writeRisks writes the risk statement list.
func (w *SimpleWriter) writeRisks(sb *strings.Builder, report *model.ExposureReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RISKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, risk := range report.Risks {
		sb.WriteString(fmt.Sprintf("  [!] %s\n", risk))
	}
	sb.WriteString("\n")
}

// writeClustering writes the counterparty section.
func (w *SimpleWriter) writeClustering(sb *strings.Builder, report *model.ExposureReport) {
	if report.Clustering.InteractedCount == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("COUNTERPARTIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Distinct counterparties: %d\n\n", report.Clustering.InteractedCount))
	for _, addr := range report.Clustering.TopAddresses {
		sb.WriteString(fmt.Sprintf("  * %s\n", addr))
	}
	sb.WriteString("\n")

	if w.verbose {
		for _, node := range report.Clustering.Nodes {
			label := node.Label
			if label == "" {
				label = "-"
			}
			sb.WriteString(fmt.Sprintf("  %-44s %-10s %-12s x%d\n", node.Address, node.Type, label, node.Count))
		}
		sb.WriteString("\n")
	}
}

// writeRecentActivity writes the recent transaction summaries.
func (w *SimpleWriter) writeRecentActivity(sb *strings.Builder, report *model.ExposureReport) {
	if len(report.RecentTxSummary) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECENT ACTIVITY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, tx := range report.RecentTxSummary {
		sb.WriteString(fmt.Sprintf("  %s  %-14s $%10.2f  %s\n", tx.Date, tx.Type, tx.AmountUSD, tx.Description))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer with explorer links.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, report *model.ExposureReport) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Explorer:  %s\n", report.Links.Solscan))
	sb.WriteString(fmt.Sprintf("Arkham:    %s\n", report.Links.Arkham))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
